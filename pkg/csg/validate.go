package csg

import "fmt"

// ValidationSeverity indicates whether a finding blocks evaluation or
// is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks evaluation
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single structural finding in a solid tree.
type ValidationError struct {
	Node     *Solid
	Message  string
	Severity ValidationSeverity
}

func (e ValidationError) Error() string {
	if e.Node == nil {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	name := e.Node.Name
	if name == "" {
		name = e.Node.Kind.String()
	}
	return fmt.Sprintf("[%s] node %s: %s", e.Severity, name, e.Message)
}

// Validate runs structural checks on the tree rooted at s and returns
// all findings. An empty slice means the tree is well-formed. The
// checks are purely structural; geometric sanity (self-intersection,
// overlap) is the boolean engine's concern.
func Validate(s *Solid) []ValidationError {
	var errs []ValidationError
	s.Walk(func(n *Solid) {
		errs = append(errs, validateNode(n)...)
	})
	return errs
}

func validateNode(n *Solid) []ValidationError {
	var errs []ValidationError
	bad := func(msg string, args ...any) {
		errs = append(errs, ValidationError{
			Node:     n,
			Message:  fmt.Sprintf(msg, args...),
			Severity: SeverityError,
		})
	}

	for i, a := range n.Args {
		if a == nil {
			bad("argument %d is nil", i)
		}
	}

	switch d := n.Data.(type) {
	case ExtrudeData:
		if len(d.Profile) < 3 {
			bad("extrusion profile has %d vertices, need at least 3", len(d.Profile))
		}
		if d.Height <= 0 {
			bad("extrusion height %g, must be positive", d.Height)
		}
	case LoftData:
		if len(d.Bottom) < 3 || len(d.Top) < 3 {
			bad("loft profiles have %d/%d vertices, need at least 3 each", len(d.Bottom), len(d.Top))
		}
		if d.Height <= 0 {
			bad("loft height %g, must be positive", d.Height)
		}
	case CylinderData:
		if d.Height <= 0 || d.Radius <= 0 {
			bad("cylinder %gx%g, dimensions must be positive", d.Height, d.Radius)
		}
	case BoxData:
		if d.X <= 0 || d.Y <= 0 || d.Z <= 0 {
			bad("box %gx%gx%g, dimensions must be positive", d.X, d.Y, d.Z)
		}
	}

	switch n.Kind {
	case KindUnion:
		if len(n.Args) == 0 {
			bad("union has no operands")
		}
	case KindDifference:
		if len(n.Args) < 2 {
			bad("difference has %d operands, need a base and at least one subtrahend", len(n.Args))
		}
	case KindTranslate, KindRotateZ:
		if len(n.Args) != 1 {
			bad("transform has %d operands, need exactly 1", len(n.Args))
		}
	case KindExtrude, KindLoft, KindCylinder, KindBox:
		if len(n.Args) != 0 {
			bad("primitive has %d operands, need 0", len(n.Args))
		}
	}
	return errs
}
