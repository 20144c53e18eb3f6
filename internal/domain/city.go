package domain

// City is static reference data used to populate search selectors.
type City struct {
	ID   int64
	Name string
	Code string
}
