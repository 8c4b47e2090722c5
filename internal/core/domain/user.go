package domain

type User struct {
	ID       string
	Name     string
	Surname  string
	Username string
}

type CreateUserInput struct {
	Name     string
	Surname  string
	Username string
}
