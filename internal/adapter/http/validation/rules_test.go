package validation

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taskPayload struct {
	Title       string `validate:"taskTitle"`
	Description string `validate:"taskDescription"`
}

type userPayload struct {
	Name     string   `validate:"personName=30"`
	Surname  string   `validate:"personName=40"`
	Username string   `validate:"username"`
	TaskIDs  []string `validate:"dive,notblank"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, Register(v))
	return v
}

func TestTaskRules(t *testing.T) {
	v := newValidator(t)

	valid := []taskPayload{
		{Title: "Fix bug", Description: "Critical fix"},
		{Title: "Zażółć (v2)?", Description: "Quote \"this\", then ship it!"},
	}
	for _, p := range valid {
		assert.NoError(t, v.Struct(p), p.Title)
	}

	invalid := []taskPayload{
		{Title: "ab", Description: "Critical fix"},
		{Title: strings.Repeat("a", 101), Description: "Critical fix"},
		{Title: "Fix <script>", Description: "Critical fix"},
		{Title: "Fix bug", Description: strings.Repeat("d", 501)},
		{Title: "Fix bug", Description: "semi;colon"},
	}
	for _, p := range invalid {
		assert.Error(t, v.Struct(p), p.Title)
	}
}

func TestUserRules(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(userPayload{Name: "Anne-Marie", Surname: "O'Neil", Username: "anne.marie_1"}))
	assert.NoError(t, v.Struct(userPayload{Name: "Łukasz", Surname: strings.Repeat("ż", 40), Username: "lk"}))

	invalid := []userPayload{
		{Name: "A", Surname: "Nowak", Username: "jn"},
		{Name: strings.Repeat("a", 31), Surname: "Nowak", Username: "jn"},
		{Name: "Jan", Surname: strings.Repeat("b", 41), Username: "jn"},
		{Name: "Jan2", Surname: "Nowak", Username: "jn"},
		{Name: "Jan", Surname: "Nowak", Username: "jan!"},
		{Name: "Jan", Surname: "Nowak", Username: "jn", TaskIDs: []string{"t1", "  "}},
	}
	for _, p := range invalid {
		assert.Error(t, v.Struct(p), "%+v", p)
	}
}
