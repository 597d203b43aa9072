package awserr

// ErrorUnmarshaller creates a typed error for the error
// responses it matches.
type ErrorUnmarshaller interface {
	Match(code string) bool
	Unmarshal(se ServiceError) error
}

// Registry is an ordered list of error unmarshallers. The
// most specific unmarshallers must be registered first.
type Registry struct {
	unmarshallers []ErrorUnmarshaller
}

func NewRegistry(unmarshallers ...ErrorUnmarshaller) *Registry {
	return &Registry{
		unmarshallers: unmarshallers,
	}
}

func (r *Registry) Register(u ErrorUnmarshaller) *Registry {
	r.unmarshallers = append(r.unmarshallers, u)
	return r
}

// Unmarshal returns the typed error of the first unmarshaller
// matching the error code or a *GenericServiceError.
func (r *Registry) Unmarshal(se ServiceError) error {
	if r != nil {
		for _, u := range r.unmarshallers {
			if u.Match(se.Code) {
				return u.Unmarshal(se)
			}
		}
	}
	return &GenericServiceError{ServiceError: se}
}

type codeUnmarshaller struct {
	code      string
	construct func(ServiceError) error
}

// ForCode returns an unmarshaller matching exactly one error
// code.
func ForCode(code string, construct func(ServiceError) error) ErrorUnmarshaller {
	return &codeUnmarshaller{
		code:      code,
		construct: construct,
	}
}

func (u *codeUnmarshaller) Match(code string) bool {
	return u.code == code
}

func (u *codeUnmarshaller) Unmarshal(se ServiceError) error {
	return u.construct(se)
}
