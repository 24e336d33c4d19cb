package storage

import "strconv"

type Customer struct {
	ID           int     `json:"id" yaml:"id"`
	Name         string  `json:"name" yaml:"name"`
	Contact      string  `json:"contact" yaml:"contact"`
	Email        string  `json:"email" yaml:"email"`
	Phone        string  `json:"phone" yaml:"phone"`
	Status       string  `json:"status" yaml:"status"`
	LastPurchase string  `json:"last_purchase" yaml:"last_purchase"`
	TotalSpent   float64 `json:"total_spent" yaml:"total_spent"`
}

func (c Customer) RowKey() string         { return strconv.Itoa(c.ID) }
func (c Customer) SearchFields() []string { return []string{c.Name, c.Contact, c.Email} }
func (c Customer) FilterValue() string    { return c.Status }

type Sale struct {
	ID       int     `json:"id" yaml:"id"`
	Customer string  `json:"customer" yaml:"customer"`
	Product  string  `json:"product" yaml:"product"`
	Amount   float64 `json:"amount" yaml:"amount"`
	Status   string  `json:"status" yaml:"status"`
	Date     string  `json:"date" yaml:"date"`
}

func (s Sale) RowKey() string         { return strconv.Itoa(s.ID) }
func (s Sale) SearchFields() []string { return []string{s.Customer, s.Product} }
func (s Sale) FilterValue() string    { return s.Status }

type Campaign struct {
	ID         int     `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	Channel    string  `json:"channel" yaml:"channel"`
	Status     string  `json:"status" yaml:"status"`
	Budget     float64 `json:"budget" yaml:"budget"`
	Leads      int     `json:"leads" yaml:"leads"`
	Conversion float64 `json:"conversion" yaml:"conversion"`
}

func (c Campaign) RowKey() string         { return strconv.Itoa(c.ID) }
func (c Campaign) SearchFields() []string { return []string{c.Name, c.Channel} }
func (c Campaign) FilterValue() string    { return c.Status }

type Ticket struct {
	ID         int    `json:"id" yaml:"id"`
	Customer   string `json:"customer" yaml:"customer"`
	Subject    string `json:"subject" yaml:"subject"`
	Priority   string `json:"priority" yaml:"priority"`
	Status     string `json:"status" yaml:"status"`
	AssignedTo string `json:"assigned_to" yaml:"assigned_to"`
	Created    string `json:"created" yaml:"created"`
}

func (t Ticket) RowKey() string         { return strconv.Itoa(t.ID) }
func (t Ticket) SearchFields() []string { return []string{t.Customer, t.Subject, t.AssignedTo} }
func (t Ticket) FilterValue() string    { return t.Status }
