package extract

// Payload is the extracted data of one document as the upstream
// extraction delivers it. Every block and field may be absent.
type Payload struct {
	Vendor    *Block[VendorFields]    `json:"vendor"`
	Customer  *Block[CustomerFields]  `json:"customer"`
	Payment   *Block[PaymentFields]   `json:"payment"`
	Invoice   *Block[InvoiceFields]   `json:"invoice"`
	Summary   *Block[SummaryFields]   `json:"summary"`
	LineItems *Block[LineItemsFields] `json:"lineItems"`
}

// Block is the value wrapper around one group of extracted fields.
type Block[T any] struct {
	Value *T `json:"value"`
}

// Fields returns the fields of the block, or nil if the block or its
// value is absent.
func (b *Block[T]) Fields() *T {
	if b == nil {
		return nil
	}

	return b.Value
}

// Items returns the line items of the payload. An absent lineItems
// block or items collection yields an empty slice.
func (p *Payload) Items() []Item {
	fields := p.LineItems.Fields()
	if fields == nil || fields.Items == nil {
		return []Item{}
	}

	return fields.Items.Value
}

type VendorFields struct {
	Name        *Field `json:"vendorName"`
	PartyNumber *Field `json:"vendorPartyNumber"`
	Address     *Field `json:"vendorAddress"`
	TaxID       *Field `json:"vendorTaxId"`
}

type CustomerFields struct {
	Name    *Field `json:"customerName"`
	Address *Field `json:"customerAddress"`
}

type PaymentFields struct {
	DueDate         *Field `json:"dueDate"`
	Terms           *Field `json:"paymentTerms"`
	BankAccount     *Field `json:"bankAccountNumber"`
	BIC             *Field `json:"BIC"`
	AccountName     *Field `json:"accountName"`
	NetDays         *Field `json:"netDays"`
	DiscountPercent *Field `json:"discountPercentage"`
	DiscountDays    *Field `json:"discountDays"`
}

type InvoiceFields struct {
	Number *Field `json:"invoiceId"`
	Date   *Field `json:"invoiceDate"`
}

type SummaryFields struct {
	Total *Field `json:"invoiceTotal"`
}

type LineItemsFields struct {
	Items *ItemList `json:"items"`
}

// ItemList is the value wrapper around the line item collection.
type ItemList struct {
	Value []Item `json:"value"`
}

// Item is one extracted invoice line item.
//
// Sachkonto is the accounting code that resolves the category,
// BUSchluessel is a tax routing code that is passed through unchanged.
type Item struct {
	Position       *Field `json:"srNo"`
	Description    *Field `json:"description"`
	Quantity       *Field `json:"quantity"`
	UnitPrice      *Field `json:"unitPrice"`
	TotalPrice     *Field `json:"totalPrice"`
	AccountingCode *Field `json:"Sachkonto"`
	TaxCode        *Field `json:"BUSchluessel"`
}
