package model

// ConfirmationKind enumerates the answers to a proposed replacement.
type ConfirmationKind int

// Available confirmation kinds.
const (
	ConfirmAccept ConfirmationKind = iota
	ConfirmAlways
	ConfirmSkip
	ConfirmRefuse
	ConfirmIgnore
	ConfirmAbort
	ConfirmReplace
)

func (k ConfirmationKind) String() string {
	switch k {
	case ConfirmAccept:
		return "accept"
	case ConfirmAlways:
		return "always"
	case ConfirmSkip:
		return "skip"
	case ConfirmRefuse:
		return "refuse"
	case ConfirmIgnore:
		return "ignore"
	case ConfirmAbort:
		return "abort"
	case ConfirmReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Confirmation is the disposition chosen for one proposed replacement.
// Replacement is only meaningful for ConfirmReplace.
type Confirmation struct {
	Kind        ConfirmationKind
	Replacement Replacement
}

// Equal compares kinds only, the payload of Replace is ignored.
func (c Confirmation) Equal(other Confirmation) bool {
	return c.Kind == other.Kind
}

func (c Confirmation) String() string {
	return c.Kind.String()
}

// Accept applies the proposed replacement.
func Accept() Confirmation { return Confirmation{Kind: ConfirmAccept} }

// Always applies the replacement and every later one from the same matcher.
func Always() Confirmation { return Confirmation{Kind: ConfirmAlways} }

// Skip leaves the file untouched and reports it as skipped.
func Skip() Confirmation { return Confirmation{Kind: ConfirmSkip} }

// Refuse leaves the file untouched.
func Refuse() Confirmation { return Confirmation{Kind: ConfirmRefuse} }

// Ignore leaves the file untouched and disables the matcher for the batch.
func Ignore() Confirmation { return Confirmation{Kind: ConfirmIgnore} }

// Abort stops the whole batch.
func Abort() Confirmation { return Confirmation{Kind: ConfirmAbort} }

// Replace applies an alternative replacement instead of the proposed one.
func Replace(replacement Replacement) Confirmation {
	return Confirmation{Kind: ConfirmReplace, Replacement: replacement}
}
