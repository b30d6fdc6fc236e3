package entities

type Client struct {
	ID      uint64
	Name    string
	Surname string
	Address string
	Phone   string
	Email   string
}
