package model

// Client is a customer who can rent tracking devices. Email is unique across
// all clients, enforced by the database.
type Client struct {
	ID    string `json:"id_cliente" gorm:"column:id_cliente;primaryKey;size:32"`
	Nome  string `json:"nome" gorm:"column:nome;size:255;not null"`
	Email string `json:"email" gorm:"column:email;size:255;not null;uniqueIndex"`
}

func (Client) TableName() string {
	return "clientes"
}
