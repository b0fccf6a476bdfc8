package ml_parser

// Visitor receives the nodes of a markup tree in document order
type Visitor interface {
	VisitElement(element *Element) error
	VisitAttribute(attribute *Attribute, parent *Element) error
	VisitText(text *Text) error
	VisitExpressionContainer(container *ExpressionContainer) error
}

// BaseVisitor implements Visitor with no-ops. Embed it and override the
// methods of interest.
type BaseVisitor struct{}

// VisitElement implements Visitor
func (BaseVisitor) VisitElement(*Element) error { return nil }

// VisitAttribute implements Visitor
func (BaseVisitor) VisitAttribute(*Attribute, *Element) error { return nil }

// VisitText implements Visitor
func (BaseVisitor) VisitText(*Text) error { return nil }

// VisitExpressionContainer implements Visitor
func (BaseVisitor) VisitExpressionContainer(*ExpressionContainer) error { return nil }

// VisitAll walks nodes depth first in document order. For an element the
// element itself is visited first, then its attributes, then its children.
// Attributes appended while the element's attributes are being visited are
// not visited. The walk stops at the first error.
func VisitAll(visitor Visitor, nodes []Node) error {
	for _, node := range nodes {
		if err := node.Visit(visitor); err != nil {
			return err
		}
		element, ok := node.(*Element)
		if !ok {
			continue
		}
		attrs := element.Attrs[:len(element.Attrs):len(element.Attrs)]
		for _, attr := range attrs {
			if err := visitor.VisitAttribute(attr, element); err != nil {
				return err
			}
		}
		if err := VisitAll(visitor, element.Children); err != nil {
			return err
		}
	}
	return nil
}
