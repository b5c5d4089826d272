package rating

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/nuex/go-ups-rating/pkg/codes"
)

// TransportFailureMessage is the fixed message carried by a Result when the
// carrier could not be reached or returned an empty body.
const TransportFailureMessage = "Communication with UPS failed."

// CarrierError holds the carrier's non-success response status and the
// first reported error detail. Fields missing from the response are blank.
type CarrierError struct {
	StatusCode        string
	StatusDescription string
	Severity          string
	Code              string
	Description       string
	Location          string
}

// Result is the outcome of one rating call. Exactly one shape is populated:
// Rates on success, Failure when the carrier reports an error, or neither
// on a communication failure, in which case ErrorMessage carries the fixed
// transport failure text. ErrorMessage is set on both failure shapes.
type Result struct {
	Success      bool
	Rates        map[string]float64
	Failure      *CarrierError
	ErrorMessage string
}

// ParseResponse classifies a raw response body as a transport failure, a
// carrier error, or a set of rate quotes keyed by service. It never fails:
// responses that parse but lack expected elements yield blank fields.
func ParseResponse(body []byte) *Result {
	if len(body) == 0 {
		return &Result{ErrorMessage: TransportFailureMessage}
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil || doc.Root() == nil {
		// Unparseable bodies classify like a response with no status code.
		return &Result{Failure: &CarrierError{}}
	}
	root := doc.Root()

	status := textOf(root.FindElement("./Response/ResponseStatusCode"))
	if isErrorStatus(status) {
		failure := &CarrierError{
			StatusCode:        status,
			StatusDescription: textOf(root.FindElement("./Response/ResponseStatusDescription")),
			Severity:          textOf(root.FindElement("./Response/Error/ErrorSeverity")),
			Code:              textOf(root.FindElement("./Response/Error/ErrorCode")),
			Description:       textOf(root.FindElement("./Response/Error/ErrorDescription")),
			Location:          textOf(root.FindElement("./Response/Error/ErrorLocation/ErrorLocationElementName")),
		}
		return &Result{Failure: failure, ErrorMessage: failure.StatusDescription}
	}

	rates := make(map[string]float64)
	for _, shipment := range doc.FindElements("//RatedShipment") {
		wireCode := textOf(shipment.FindElement("./Service/Code"))
		key, ok := codes.ServiceTypes.Key(wireCode)
		if !ok {
			// Keep quotes for wire codes we don't know under the raw code.
			key = wireCode
		}
		charge, _ := strconv.ParseFloat(textOf(shipment.FindElement("./TotalCharges/MonetaryValue")), 64)
		rates[key] = charge
	}

	return &Result{Success: true, Rates: rates}
}

// isErrorStatus reports whether the response status marks a carrier error:
// missing, non-numeric, or zero.
func isErrorStatus(status string) bool {
	code, err := strconv.Atoi(strings.TrimSpace(status))
	return err != nil || code == 0
}

func textOf(el *etree.Element) string {
	if el == nil {
		return ""
	}
	return el.Text()
}
