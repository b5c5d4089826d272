package rating

// StructuredPhone is the component form of a phone number, used wherever a
// flat phone string is not supplied. Plan and Line are required by the
// carrier; CountryCode and Extension are optional.
type StructuredPhone struct {
	CountryCode string // up to 3 characters
	Plan        string // dial plan number, up to 15 characters
	Line        string // line number, up to 15 characters
	Extension   string // up to 4 characters
}

// Package describes one parcel in the shipment. All fields are optional;
// pointer fields distinguish an absent value from zero where the carrier
// treats presence itself as meaningful.
type Package struct {
	Type                 string // package type key, defaults to "package"
	PackagingDescription string
	Description          string

	// Dimensions. Ignored for fixed-size carrier packaging (letter, tube
	// and the express boxes).
	LengthUnit           string // defaults to "in"
	DimensionDescription string
	Length               float64
	Width                float64
	Height               float64

	DimensionalWeight            *float64
	DimensionalWeightUnit        string // defaults to "lbs"
	DimensionalWeightDescription string

	Weight            *float64
	WeightUnit        string // defaults to "lbs"
	WeightDescription string

	// Package service options.
	CODValue               *float64
	CODFundCode            string
	CODCurrencyCode        string // defaults to "USD"
	CODInsurance           float64
	CODControlNumber       string
	DeliveryConfirmation   string
	Phone                  string
	StructuredPhone        *StructuredPhone
	VerbalConfirmationName string
	AdditionalHandling     bool

	LargePackage bool
}

// Options is the flat attribute set describing credentials and a shipment.
// Everything is optional except the five fields checked by Validate.
type Options struct {
	// Access credentials, required.
	AccessLicenseNumber string
	UserID              string
	Password            string

	// Origin. Country is required; the other fields feed the Shipper block
	// and, when ShipFromCountry is set, the ShipFrom block as well.
	Country        string
	AccountNumber  string
	StreetAddress1 string
	StreetAddress2 string
	StreetAddress3 string
	City           string
	State          string
	PostalCode     string

	// Destination. ToCountry is required.
	ToCountry        string
	ToStreetAddress1 string
	ToStreetAddress2 string
	ToStreetAddress3 string
	ToCity           string
	ToState          string
	ToPostalCode     string
	ToResidential    bool

	// Recipient contact fields. The ShipFrom block reads these same fields
	// when present, matching the carrier gateway's behavior.
	RecipientNumber string
	CompanyName     string
	AttentionName   string
	Phone           string
	StructuredPhone *StructuredPhone
	TaxID           string
	Fax             string

	// ShipFromCountry enables the ShipFrom block. FromResidential marks the
	// origin address as residential within it.
	ShipFromCountry string
	FromResidential bool

	// Shop requests quotes for all available services instead of one.
	Shop bool
	// Test routes the request to the carrier's integration environment.
	Test bool

	CustomerContext string
	ToolVersion     string

	PickupType             string
	CustomerClassification string

	Description   string
	ServiceType   string // defaults to "ground"; ignored in Shop mode
	DocumentsOnly bool

	// Packages lists the parcels in the shipment. When empty, a single
	// default package is generated from Weight, WeightUnit and PackageType.
	Packages    []Package
	Weight      float64
	WeightUnit  string // defaults to "lbs"
	PackageType string // defaults to "package"

	// Shipment service options. InsuredValue and CODValue are passed to the
	// carrier exactly as given, unformatted.
	SaturdayPickup   bool
	OnCallDay        string // defaults to "future" when OnCallAir is requested
	OnCallMethod     string // defaults to "internet"
	InsuredValue     string
	CODValue         string
	CODFundCode      string
	CODCurrencyCode  string // defaults to "USD"
	CODControlNumber string

	NegotiatedRates bool
}

// Validate checks that all required options are present. It returns a
// ValidationError naming every missing field, before any document is built.
func (o *Options) Validate() error {
	var missing []string
	if o.AccessLicenseNumber == "" {
		missing = append(missing, "AccessLicenseNumber")
	}
	if o.UserID == "" {
		missing = append(missing, "UserID")
	}
	if o.Password == "" {
		missing = append(missing, "Password")
	}
	if o.Country == "" {
		missing = append(missing, "Country")
	}
	if o.ToCountry == "" {
		missing = append(missing, "ToCountry")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
