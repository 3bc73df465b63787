package models

// Customer represents the party an invoice is billed to.
//
// Unlike vendors, customers are identified by the pair of name and
// address. The same name with two different addresses is two customers.
type Customer struct {
	DefaultModel
	Name    string  `gorm:"index:idx_customers_name_address"`
	Address *string `gorm:"index:idx_customers_name_address"`
}
