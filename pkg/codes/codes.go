package codes

type pair struct {
	key  string
	code string
}

// Table is an ordered mapping between human-readable option keys and the
// carrier's wire codes for one attribute dimension.
type Table struct {
	name  string
	pairs []pair
	index map[string]string
}

func newTable(name string, pairs ...pair) *Table {
	index := make(map[string]string, len(pairs))
	for _, p := range pairs {
		index[p.key] = p.code
	}
	return &Table{name: name, pairs: pairs, index: index}
}

// Name returns the option name the table codes for, as used in error
// messages.
func (t *Table) Name() string {
	return t.name
}

// Code returns the wire code for key.
func (t *Table) Code(key string) (string, bool) {
	code, ok := t.index[key]
	return code, ok
}

// Key returns the human-readable key for a wire code. When a code appears
// more than once, the first key in declaration order wins.
func (t *Table) Key(code string) (string, bool) {
	for _, p := range t.pairs {
		if p.code == code {
			return p.key, true
		}
	}
	return "", false
}

// Keys returns the table's keys in declaration order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.pairs))
	for i, p := range t.pairs {
		keys[i] = p.key
	}
	return keys
}

// PickupTypes codes the pickup_type option.
var PickupTypes = newTable("pickup_type",
	pair{"daily_pickup", "01"},
	pair{"customer_counter", "03"},
	pair{"one_time_pickup", "06"},
	pair{"on_call_air", "07"},
	pair{"suggested_retail_rates", "11"},
	pair{"letter_center", "19"},
	pair{"air_service_center", "20"},
)

// CustomerClassifications codes the customer_classification option.
var CustomerClassifications = newTable("customer_classification",
	pair{"wholesale", "01"},
	pair{"occasional", "03"},
	pair{"retail", "04"},
)

// WeightUnits codes weight units of measurement.
var WeightUnits = newTable("weight_unit",
	pair{"lbs", "LBS"},
	pair{"kgs", "KGS"},
)

// LengthUnits codes dimension units of measurement.
var LengthUnits = newTable("length_unit",
	pair{"in", "IN"},
	pair{"cm", "CM"},
)

// ServiceTypes codes the service_type option and keys rate quotes in
// responses.
var ServiceTypes = newTable("service_type",
	pair{"next_day_air", "01"},
	pair{"second_day_air", "02"},
	pair{"ground", "03"},
	pair{"worldwide_express", "07"},
	pair{"worldwide_expedited", "08"},
	pair{"standard", "11"},
	pair{"three_day_select", "12"},
	pair{"next_day_air_saver", "13"}, // not in the carrier docs, but exists
	pair{"next_day_air_early", "14"},
	pair{"worldwide_express_plus", "54"},
	pair{"second_day_air_am", "59"},
	pair{"saver", "65"},
)

// PackageTypes codes the package type option.
var PackageTypes = newTable("package_type",
	pair{"unknown", "00"},
	pair{"letter", "01"},
	pair{"package", "02"},
	pair{"tube", "03"},
	pair{"pak", "04"},
	pair{"small_express", "2a"},
	pair{"medium_express", "2b"},
	pair{"large_express", "2c"},
	pair{"twofive_kg_box", "24"},
	pair{"onezero_kg_box", "25"},
	pair{"pallet", "30"},
)

// FundCodes codes the cod_fund_code option.
var FundCodes = newTable("cod_fund_code",
	pair{"cash", "0"},
	pair{"check", "8"}, // cashier's check or money order
)

// DeliveryConfirmationTypes codes the delivery_confirmation option.
var DeliveryConfirmationTypes = newTable("delivery_confirmation",
	pair{"confirmation", "1"},
	pair{"signature", "2"},
	pair{"adult_signature", "3"},
)

// PickupDays codes the on_call_day option.
var PickupDays = newTable("on_call_day",
	pair{"same_day", "01"},
	pair{"future", "02"},
)

// OnCallMethods codes the on_call_method option.
var OnCallMethods = newTable("on_call_method",
	pair{"internet", "01"},
	pair{"phone", "02"},
)
