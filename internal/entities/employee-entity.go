package entities

type Employee struct {
	ID      uint64
	Name    string
	Surname string
	Post    string
}
