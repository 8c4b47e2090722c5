package mapper

import (
	"github.com/JacobNatural/task-manager/internal/adapter/http/dto"
	"github.com/JacobNatural/task-manager/internal/core/domain"
)

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:       user.ID,
		Name:     user.Name,
		Surname:  user.Surname,
		Username: user.Username,
	}
}

func ToUserPage(page domain.Page[domain.User]) dto.Page[dto.UserItem] {
	items := make([]dto.UserItem, 0, len(page.Items))
	for _, user := range page.Items {
		items = append(items, ToUserItem(user))
	}
	return dto.Page[dto.UserItem]{List: items, Total: page.Total, Page: page.Page, Size: page.Size}
}

func ToCreateUserInput(req dto.CreateUserRequest) domain.CreateUserInput {
	return domain.CreateUserInput{Name: req.Name, Surname: req.Surname, Username: req.Username}
}

func ToIDResponses(ids []string) []dto.IDResponse {
	out := make([]dto.IDResponse, 0, len(ids))
	for _, id := range ids {
		out = append(out, dto.IDResponse{ID: id})
	}
	return out
}

func ToUpdateResponse(result domain.UpdateResult) dto.UpdateResponse {
	return dto.UpdateResponse{Matched: result.Matched, Modified: result.Modified}
}
