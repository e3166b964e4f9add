package payment

// Charge creation is the one call with local input validation: the service
// rejects malformed charges late and expensively, so the known parameter
// sets are enforced before the request leaves the process.
var (
	requiredChargeParams = []string{"credit_card_token", "amount_cents", "currency"}
	optionalChargeParams = []string{
		"customer_name", "customer_address", "customer_email",
		"statement_descriptor", "services", "description", "capture",
	}
)

// verifyChargeParams checks that every required charge parameter is present
// and that no parameter outside the required and optional sets sneaks in.
func verifyChargeParams(params Params) error {
	for _, required := range requiredChargeParams {
		if _, ok := params[required]; !ok {
			return &ParameterError{Param: required}
		}
	}
	known := make(map[string]struct{}, len(requiredChargeParams)+len(optionalChargeParams))
	for _, param := range requiredChargeParams {
		known[param] = struct{}{}
	}
	for _, param := range optionalChargeParams {
		known[param] = struct{}{}
	}
	for param := range params {
		if _, ok := known[param]; !ok {
			return &ParameterError{Param: param, Unknown: true}
		}
	}
	return nil
}
