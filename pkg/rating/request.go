package rating

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/nuex/go-ups-rating/pkg/codes"
)

// xpciVersion is the fixed protocol version sent in every request.
const xpciVersion = "1.0"

// fixedSizeTypes are carrier-supplied packaging with no meaningful
// dimensions; the Dimensions block is omitted for them.
var fixedSizeTypes = map[string]bool{
	"letter":         true,
	"tube":           true,
	"small_express":  true,
	"medium_express": true,
	"large_express":  true,
}

// AccessRequest builds the credentials fragment. The carrier expects it
// prepended to the rating request in the same POST body. Credential values
// pass through as-is: no truncation beyond standard XML escaping.
func AccessRequest(opts *Options) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	access := doc.CreateElement("AccessRequest")
	access.CreateAttr("xml:lang", "en-US")
	access.CreateElement("AccessLicenseNumber").SetText(opts.AccessLicenseNumber)
	access.CreateElement("UserId").SetText(opts.UserID)
	access.CreateElement("Password").SetText(opts.Password)

	return doc
}

// SelectionRequest builds the RatingServiceSelectionRequest fragment. It
// validates required options first and returns a ValidationError or
// EncodingError without producing a partial document.
func SelectionRequest(opts *Options) (*etree.Document, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	mode := "Rate"
	if opts.Shop {
		mode = "Shop"
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rssr := doc.CreateElement("RatingServiceSelectionRequest")
	rssr.CreateAttr("xml:lang", "en-US")

	req := rssr.CreateElement("Request")
	req.CreateElement("RequestAction").SetText("Rate")
	req.CreateElement("RequestOption").SetText(mode)

	ref := req.CreateElement("TransactionReference")
	if opts.CustomerContext != "" {
		ref.CreateElement("CustomerContext").SetText(truncate(opts.CustomerContext, 512))
	}
	ref.CreateElement("XpciVersion").SetText(xpciVersion)
	if opts.ToolVersion != "" {
		ref.CreateElement("ToolVersion").SetText(opts.ToolVersion)
	}

	if opts.PickupType != "" {
		code, err := lookup(codes.PickupTypes, opts.PickupType)
		if err != nil {
			return nil, err
		}
		req.CreateElement("PickupType").CreateElement("Code").SetText(code)
	}

	if opts.CustomerClassification != "" {
		code, err := lookup(codes.CustomerClassifications, opts.CustomerClassification)
		if err != nil {
			return nil, err
		}
		req.CreateElement("CustomerClassification").CreateElement("Code").SetText(code)
	}

	shipment := rssr.CreateElement("Shipment")

	if opts.Description != "" {
		shipment.CreateElement("Description").SetText(truncate(opts.Description, 35))
	}

	buildShipper(shipment, opts)
	buildShipTo(shipment, opts)
	if opts.ShipFromCountry != "" {
		buildShipFrom(shipment, opts)
	}

	if mode == "Rate" {
		serviceType := opts.ServiceType
		if serviceType == "" {
			serviceType = "ground"
		}
		code, err := lookup(codes.ServiceTypes, serviceType)
		if err != nil {
			return nil, err
		}
		shipment.CreateElement("Service").CreateElement("Code").SetText(code)
	}

	if opts.DocumentsOnly {
		shipment.CreateElement("DocumentsOnly")
	}

	if len(opts.Packages) > 0 {
		for i := range opts.Packages {
			if err := buildPackage(shipment, &opts.Packages[i]); err != nil {
				return nil, err
			}
		}
	} else {
		if err := buildDefaultPackage(shipment, opts); err != nil {
			return nil, err
		}
	}

	if err := buildShipmentServiceOptions(shipment, opts); err != nil {
		return nil, err
	}

	if opts.NegotiatedRates {
		shipment.CreateElement("RateInformation").CreateElement("NegotiatedRatesIndicator")
	}

	return doc, nil
}

func buildShipper(shipment *etree.Element, opts *Options) {
	shipper := shipment.CreateElement("Shipper")
	if opts.AccountNumber != "" {
		shipper.CreateElement("ShipperNumber").SetText(opts.AccountNumber)
	}

	addr := shipper.CreateElement("Address")
	setIf(addr, "AddressLine1", truncate(opts.StreetAddress1, 35))
	setIf(addr, "AddressLine2", truncate(opts.StreetAddress2, 35))
	setIf(addr, "AddressLine3", truncate(opts.StreetAddress3, 35))
	setIf(addr, "City", truncate(opts.City, 30))
	setIf(addr, "StateProvinceCode", truncate(opts.State, 5))
	setIf(addr, "PostalCode", truncate(opts.PostalCode, 9))
	addr.CreateElement("CountryCode").SetText(strings.ToUpper(truncate(opts.Country, 2)))
}

func buildShipTo(shipment *etree.Element, opts *Options) {
	shipTo := shipment.CreateElement("ShipTo")
	buildRecipient(shipTo, opts)

	addr := shipTo.CreateElement("Address")
	setIf(addr, "AddressLine1", truncate(opts.ToStreetAddress1, 35))
	setIf(addr, "AddressLine2", truncate(opts.ToStreetAddress2, 35))
	setIf(addr, "AddressLine3", truncate(opts.ToStreetAddress3, 35))
	setIf(addr, "City", truncate(opts.ToCity, 30))
	// State and postal code pass through untruncated on the destination
	// side, and the country code is not uppercased.
	setIf(addr, "StateProvinceCode", opts.ToState)
	setIf(addr, "PostalCode", opts.ToPostalCode)
	addr.CreateElement("CountryCode").SetText(truncate(opts.ToCountry, 2))
	if opts.ToResidential {
		addr.CreateElement("ResidentialAddressIndicator")
	}
}

// buildShipFrom mirrors ShipTo's structure sourced from the origin address
// fields. It reads the same recipient contact fields as ShipTo, which is
// what the carrier gateway sends.
func buildShipFrom(shipment *etree.Element, opts *Options) {
	shipFrom := shipment.CreateElement("ShipFrom")
	buildRecipient(shipFrom, opts)

	addr := shipFrom.CreateElement("Address")
	setIf(addr, "AddressLine1", truncate(opts.StreetAddress1, 35))
	setIf(addr, "AddressLine2", truncate(opts.StreetAddress2, 35))
	setIf(addr, "AddressLine3", truncate(opts.StreetAddress3, 35))
	setIf(addr, "City", truncate(opts.City, 30))
	setIf(addr, "StateProvinceCode", opts.State)
	setIf(addr, "PostalCode", opts.PostalCode)
	addr.CreateElement("CountryCode").SetText(truncate(opts.Country, 2))
	if opts.FromResidential {
		addr.CreateElement("ResidentialAddressIndicator")
	}
}

func buildRecipient(parent *etree.Element, opts *Options) {
	if opts.RecipientNumber != "" {
		parent.CreateElement("ShipperAssignedIdentificationNumber").SetText(opts.RecipientNumber)
	}
	if opts.CompanyName != "" {
		parent.CreateElement("CompanyName").SetText(opts.CompanyName)
	}
	if opts.AttentionName != "" {
		// The schema has no separate attention element; the attention name
		// goes out as a second CompanyName.
		parent.CreateElement("CompanyName").SetText(opts.AttentionName)
	}
	buildPhone(parent, opts.Phone, opts.StructuredPhone)
	if opts.TaxID != "" {
		parent.CreateElement("TaxIdentificationNumber").SetText(truncate(opts.TaxID, 15))
	}
	if opts.Fax != "" {
		parent.CreateElement("FaxNumber").SetText(truncate(opts.Fax, 15))
	}
}

// buildPhone emits a flat PhoneNumber when a phone string is given, else
// the structured form when one is supplied. The flat string wins when both
// are present.
func buildPhone(parent *etree.Element, phone string, structured *StructuredPhone) {
	switch {
	case phone != "":
		parent.CreateElement("PhoneNumber").SetText(phone)
	case structured != nil:
		number := parent.CreateElement("PhoneNumber")
		if structured.CountryCode != "" {
			number.CreateElement("PhoneCountryCode").SetText(truncate(structured.CountryCode, 3))
		}
		number.CreateElement("PhoneDialPlanNumber").SetText(truncate(structured.Plan, 15))
		number.CreateElement("PhoneLineNumber").SetText(truncate(structured.Line, 15))
		if structured.Extension != "" {
			number.CreateElement("PhoneExtension").SetText(truncate(structured.Extension, 4))
		}
	}
}

func buildPackage(shipment *etree.Element, pkg *Package) error {
	node := shipment.CreateElement("Package")

	packageType := pkg.Type
	if packageType == "" {
		packageType = "package"
	}
	typeCode, err := lookup(codes.PackageTypes, packageType)
	if err != nil {
		return err
	}

	packaging := node.CreateElement("PackagingType")
	packaging.CreateElement("Code").SetText(typeCode)
	if pkg.PackagingDescription != "" {
		packaging.CreateElement("Description").SetText(truncate(pkg.PackagingDescription, 35))
	}

	if pkg.Description != "" {
		node.CreateElement("Description").SetText(truncate(pkg.Description, 35))
	}

	if !fixedSizeTypes[packageType] {
		dims := node.CreateElement("Dimensions")
		uom := dims.CreateElement("UnitOfMeasurement")

		lengthUnit := pkg.LengthUnit
		if lengthUnit == "" {
			lengthUnit = "in"
		}
		unitCode, err := lookup(codes.LengthUnits, lengthUnit)
		if err != nil {
			return err
		}
		uom.CreateElement("Code").SetText(unitCode)
		if pkg.DimensionDescription != "" {
			uom.CreateElement("Description").SetText(truncate(pkg.DimensionDescription, 35))
		}

		dims.CreateElement("Length").SetText(formatDimension(pkg.Length))
		dims.CreateElement("Width").SetText(formatDimension(pkg.Width))
		dims.CreateElement("Height").SetText(formatDimension(pkg.Height))
	}

	if pkg.DimensionalWeight != nil {
		dw := node.CreateElement("DimensionalWeight")
		uom := dw.CreateElement("UnitOfMeasurement")

		unit := pkg.DimensionalWeightUnit
		if unit == "" {
			unit = "lbs"
		}
		unitCode, err := lookup(codes.WeightUnits, unit)
		if err != nil {
			return err
		}
		uom.CreateElement("Code").SetText(unitCode)
		if pkg.DimensionalWeightDescription != "" {
			uom.CreateElement("Description").SetText(truncate(pkg.DimensionalWeightDescription, 35))
		}
		// The schema nests the dimensional weight value under its unit.
		uom.CreateElement("Weight").SetText(formatWeight(*pkg.DimensionalWeight))
	}

	if pkg.Weight != nil {
		pw := node.CreateElement("PackageWeight")

		unit := pkg.WeightUnit
		if unit == "" {
			unit = "lbs"
		}
		unitCode, err := lookup(codes.WeightUnits, unit)
		if err != nil {
			return err
		}
		pw.CreateElement("Code").SetText(unitCode)
		if pkg.WeightDescription != "" {
			pw.CreateElement("Description").SetText(truncate(pkg.WeightDescription, 35))
		}
		pw.CreateElement("Weight").SetText(formatWeight(*pkg.Weight))
	}

	if pkg.LargePackage {
		node.CreateElement("LargePackageIndicator")
	}

	return buildPackageServiceOptions(node, pkg)
}

func buildPackageServiceOptions(node *etree.Element, pkg *Package) error {
	if pkg.CODValue == nil && pkg.DeliveryConfirmation == "" &&
		pkg.Phone == "" && pkg.StructuredPhone == nil && !pkg.AdditionalHandling {
		return nil
	}

	pso := node.CreateElement("PackageServiceOptions")

	if pkg.CODValue != nil {
		cod := pso.CreateElement("COD")

		if pkg.CODFundCode != "" {
			fund, err := lookup(codes.FundCodes, pkg.CODFundCode)
			if err != nil {
				return err
			}
			cod.CreateElement("CODFundsCode").SetText(fund)
		}

		cod.CreateElement("CODCode").SetText("3")

		currency := pkg.CODCurrencyCode
		if currency == "" {
			currency = "USD"
		}
		amount := cod.CreateElement("CODAmount")
		amount.CreateElement("CurrencyCode").SetText(currency)
		amount.CreateElement("MonetaryValue").SetText(formatMonetary(*pkg.CODValue))

		insured := cod.CreateElement("InsuredValue")
		insured.CreateElement("CurrencyCode").SetText(currency)
		insured.CreateElement("MonetaryValue").SetText(formatMonetary(pkg.CODInsurance))

		if pkg.CODControlNumber != "" {
			cod.CreateElement("ControlNumber").SetText(truncate(pkg.CODControlNumber, 11))
		}
	}

	if pkg.DeliveryConfirmation != "" {
		code, err := lookup(codes.DeliveryConfirmationTypes, pkg.DeliveryConfirmation)
		if err != nil {
			return err
		}
		pso.CreateElement("DeliveryConfirmation").CreateElement("DCISType").SetText(code)
	}

	if pkg.Phone != "" || pkg.StructuredPhone != nil {
		verbal := pso.CreateElement("VerbalConfirmation")
		if pkg.VerbalConfirmationName != "" {
			verbal.CreateElement("Name").SetText(truncate(pkg.VerbalConfirmationName, 35))
		}
		buildPhone(verbal, pkg.Phone, pkg.StructuredPhone)
	}

	if pkg.AdditionalHandling {
		pso.CreateElement("AdditionalHandling")
	}

	return nil
}

// buildDefaultPackage fakes out a single package from the top-level weight
// options when no package list was passed in.
func buildDefaultPackage(shipment *etree.Element, opts *Options) error {
	node := shipment.CreateElement("Package")

	packageType := opts.PackageType
	if packageType == "" {
		packageType = "package"
	}
	typeCode, err := lookup(codes.PackageTypes, packageType)
	if err != nil {
		return err
	}

	packaging := node.CreateElement("PackagingType")
	packaging.CreateElement("Code").SetText(typeCode)
	packaging.CreateElement("Description").SetText("(Default) Medium Express Box")

	node.CreateElement("Description").SetText("Default Generated Package")

	pw := node.CreateElement("PackageWeight")
	uom := pw.CreateElement("UnitOfMeasurement")

	unit := opts.WeightUnit
	if unit == "" {
		unit = "lbs"
	}
	unitCode, err := lookup(codes.WeightUnits, unit)
	if err != nil {
		return err
	}
	uom.CreateElement("Code").SetText(unitCode)
	pw.CreateElement("Weight").SetText(formatWeight(opts.Weight))

	return nil
}

func buildShipmentServiceOptions(shipment *etree.Element, opts *Options) error {
	if !opts.SaturdayPickup && opts.CODValue == "" &&
		opts.OnCallDay == "" && opts.InsuredValue == "" {
		return nil
	}

	sso := shipment.CreateElement("ShipmentServiceOptions")

	if opts.SaturdayPickup {
		sso.CreateElement("SaturdayPickupIndicator")
	}

	if opts.OnCallDay != "" || opts.OnCallMethod != "" {
		day := opts.OnCallDay
		if day == "" {
			day = "future"
		}
		dayCode, err := lookup(codes.PickupDays, day)
		if err != nil {
			return err
		}
		method := opts.OnCallMethod
		if method == "" {
			method = "internet"
		}
		methodCode, err := lookup(codes.OnCallMethods, method)
		if err != nil {
			return err
		}
		schedule := sso.CreateElement("OnCallAir").CreateElement("Schedule")
		schedule.CreateElement("PickupDay").SetText(dayCode)
		schedule.CreateElement("Method").SetText(methodCode)
	}

	currency := opts.CODCurrencyCode
	if currency == "" {
		currency = "USD"
	}

	if opts.InsuredValue != "" {
		// Shipment-level monetary values go out unformatted, unlike the
		// package-level COD amounts.
		insured := sso.CreateElement("InsuredValue")
		insured.CreateElement("CurrencyCode").SetText(currency)
		insured.CreateElement("MonetaryValue").SetText(opts.InsuredValue)
	}

	if opts.CODValue != "" {
		cod := sso.CreateElement("COD")

		if opts.CODFundCode != "" {
			fund, err := lookup(codes.FundCodes, opts.CODFundCode)
			if err != nil {
				return err
			}
			cod.CreateElement("CODFundsCode").SetText(fund)
		}

		cod.CreateElement("CODCode").SetText("3")

		amount := cod.CreateElement("CODAmount")
		amount.CreateElement("CurrencyCode").SetText(currency)
		amount.CreateElement("MonetaryValue").SetText(opts.CODValue)

		insured := cod.CreateElement("InsuredValue")
		insured.CreateElement("CurrencyCode").SetText(currency)
		insured.CreateElement("MonetaryValue").SetText(opts.InsuredValue)

		if opts.CODControlNumber != "" {
			cod.CreateElement("ControlNumber").SetText(truncate(opts.CODControlNumber, 11))
		}
	}

	return nil
}

func lookup(t *codes.Table, key string) (string, error) {
	code, ok := t.Code(key)
	if !ok {
		return "", &EncodingError{Table: t.Name(), Key: key}
	}
	return code, nil
}

func setIf(parent *etree.Element, tag, text string) {
	if text != "" {
		parent.CreateElement(tag).SetText(text)
	}
}

func truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}

func formatWeight(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func formatDimension(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func formatMonetary(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
