package catalog

// AddFormFields lists the add-form fields in the order they are sent.
var AddFormFields = []string{"name", "price", "volume", "supplier", "volumePercent", "inStock", "type", "isAlcoholic"}

// AddForm holds the raw values of the add form.
type AddForm struct {
	Name          string
	Price         string
	Volume        string
	Supplier      string
	VolumePercent string
	InStock       string
	Type          string
	IsAlcoholic   bool
}

// Build converts the form into the new-item body. price, volume and
// volumePercent keep their leading decimal number and inStock its leading
// integer; unparsable numbers are sent as null.
func (f AddForm) Build() *Item {
	return NewItem(
		Field{Key: "name", Value: f.Name},
		Field{Key: "price", Value: ParseFloatPrefix(f.Price)},
		Field{Key: "volume", Value: ParseFloatPrefix(f.Volume)},
		Field{Key: "supplier", Value: f.Supplier},
		Field{Key: "volumePercent", Value: ParseFloatPrefix(f.VolumePercent)},
		Field{Key: "inStock", Value: ParseIntPrefix(f.InStock)},
		Field{Key: "type", Value: f.Type},
		Field{Key: "isAlcoholic", Value: f.IsAlcoholic},
	)
}
