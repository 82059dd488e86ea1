package sink

import (
	"fmt"

	"github.com/bugadani/embedded-layout/pkg/document"
	"github.com/bugadani/embedded-layout/pkg/layout/linear"
)

// DescribeOrientation summarizes the orientation of a layout element, such as
// "horizontal bottom fixed(2)". It returns "" for boxes.
func DescribeOrientation(e *document.Element) string {
	if e.Layout == nil {
		return ""
	}
	switch o := e.Layout.Orientation().(type) {
	case linear.Horizontal:
		return fmt.Sprintf("horizontal %s %s", o.Secondary, spacingName(o.Spacing))
	case linear.Vertical:
		return fmt.Sprintf("vertical %s %s", o.Secondary, spacingName(o.Spacing))
	default:
		return fmt.Sprintf("%T", o)
	}
}

func spacingName(s linear.Spacing) string {
	if s == nil {
		return linear.Tight{}.String()
	}
	if str, ok := s.(fmt.Stringer); ok {
		return str.String()
	}
	return fmt.Sprintf("%T", s)
}
