package modules

import (
	"fmt"
	"strconv"

	"jsx2mp-go/packages/compiler/src/binding"
	"jsx2mp-go/packages/compiler/src/config"
	ep "jsx2mp-go/packages/compiler/src/expression_parser"
	"jsx2mp-go/packages/compiler/src/ml_parser"
	"jsx2mp-go/packages/compiler/src/schema"
	"jsx2mp-go/packages/compiler/src/util"
)

type attributeModule struct{}

// Parse implements Module
func (attributeModule) Parse(parsed *Parsed) error {
	refs, dynamicRef, err := TransformAttribute(parsed.TemplateAST, parsed.Adapter, parsed)
	if err != nil {
		return err
	}
	parsed.Refs = refs
	parsed.DynamicRef = dynamicRef
	return nil
}

// Generate implements Module
func (attributeModule) Generate(_ *Generated, parsed *Parsed) error {
	if !parsed.Adapter.IsQuickApp() {
		return nil
	}
	return TransformPreComponentAttr(parsed.TemplateAST)
}

// TransformAttribute rewrites the key, className, style and ref attributes of
// nodes for adapter's platform. The ids and dynamic ref keys it needs are
// allocated from unit. It returns the refs in document order together with
// the unit's dynamic binding registry.
//
// The tree is rewritten in place; running the transform twice over the same
// tree is not supported.
func TransformAttribute(nodes []ml_parser.Node, adapter *config.Adapter, unit *Parsed) ([]RefEntry, *binding.DynamicBinding, error) {
	if err := ml_parser.VisitAll(&idCollector{ids: unit.Ids}, nodes); err != nil {
		return nil, nil, err
	}

	t := &attributeTransformer{
		adapter:    adapter,
		unit:       unit,
		components: schema.NewNativeComponentRegistry(adapter.Platform),
	}
	if err := ml_parser.VisitAll(t, nodes); err != nil {
		return nil, nil, err
	}
	return t.refs, unit.DynamicRef, nil
}

type attributeTransformer struct {
	ml_parser.BaseVisitor

	adapter    *config.Adapter
	unit       *Parsed
	components schema.ElementSchemaRegistry
	refs       []RefEntry
}

// idCollector claims the ids written in the template so generated ids never
// collide with them.
type idCollector struct {
	ml_parser.BaseVisitor

	ids *binding.IdAllocator
}

func (c *idCollector) VisitAttribute(attr *ml_parser.Attribute, _ *ml_parser.Element) error {
	if value, ok := attr.Value.(*ml_parser.StringLiteral); ok && attr.Name == "id" {
		c.ids.Claim(value.Value)
	}
	return nil
}

func (t *attributeTransformer) VisitAttribute(attr *ml_parser.Attribute, parent *ml_parser.Element) error {
	switch attr.Name {
	case "key":
		return t.transformKey(attr)
	case "className":
		t.transformClassName(attr, parent)
	case "style":
		t.transformStyle(attr, parent)
	case "ref":
		if t.adapter.IsQuickApp() {
			return t.transformStringRef(attr)
		}
		return t.transformComponentRef(attr, parent)
	}
	return nil
}

func (t *attributeTransformer) transformKey(attr *ml_parser.Attribute) error {
	var replacement ml_parser.AttrValue
	if t.adapter.NeedTransformKey && attr.Value != nil {
		switch original := attr.Value.OriginalExpression().(type) {
		case *ep.Identifier:
			replacement = ml_parser.NewStringLiteral(original.Name, attr.Value.SourceSpan())
		case *ep.MemberExpression:
			name, ok := staticPropertyName(original)
			if !ok {
				return util.NewCodeError(util.InvalidKeyExpression, attr.SourceSpan(),
					fmt.Sprintf("key must be a statically known property, got %s", ep.Stringify(original)))
			}
			replacement = ml_parser.NewStringLiteral(name, attr.Value.SourceSpan())
		}
	}

	attr.Name = t.adapter.KeyAttrName
	if replacement != nil {
		attr.Value = replacement
	}
	return nil
}

// staticPropertyName returns the property name of `a.b`, `a["b"]` or `a[0]`
func staticPropertyName(member *ep.MemberExpression) (string, bool) {
	switch property := member.Property.(type) {
	case *ep.Identifier:
		if !member.Computed {
			return property.Name, true
		}
	case *ep.StringLiteral:
		return property.Value, true
	case *ep.NumericLiteral:
		return strconv.FormatFloat(property.Value, 'f', -1, 64), true
	}
	return "", false
}

func (t *attributeTransformer) transformClassName(attr *ml_parser.Attribute, parent *ml_parser.Element) {
	native := schema.IsNative(t.components, parent)
	switch {
	case !t.adapter.StyleKeyword && native:
		attr.Name = "class"
	case !t.adapter.StyleKeyword:
		parent.AppendAttr(ml_parser.NewAttribute("class", ml_parser.CloneValue(attr.Value), attr.SourceSpan(), attr.KeySpan))
	case native || t.adapter.IsQuickApp():
		attr.Name = "class"
	}
}

func (t *attributeTransformer) transformStyle(attr *ml_parser.Attribute, parent *ml_parser.Element) {
	if !t.adapter.StyleKeyword || schema.IsNative(t.components, parent) {
		return
	}
	if t.adapter.IsQuickApp() && parent.IsCustomEl {
		attr.Name = "style-sheet"
	} else {
		attr.Name = "styleSheet"
	}
}

func (t *attributeTransformer) transformStringRef(attr *ml_parser.Attribute) error {
	var ref *ml_parser.StringLiteral
	switch value := attr.Value.(type) {
	case *ml_parser.ExpressionContainer:
		ref = ml_parser.NewStringLiteral(ep.Stringify(value.Expression), value.SourceSpan())
	case *ml_parser.StringLiteral:
		ref = value
	default:
		return util.NewCodeError(util.InvalidRefValue, attr.SourceSpan(),
			`ref must be a string or an expression container, like <div ref="scrollRef" />`)
	}

	attr.Name = "id"
	attr.Value = ref
	t.refs = append(t.refs, &StringRef{Value: ref.Value})
	return nil
}

func (t *attributeTransformer) transformComponentRef(attr *ml_parser.Attribute, parent *ml_parser.Element) error {
	container, ok := attr.Value.(*ml_parser.ExpressionContainer)
	if !ok {
		return invalidRefExpression(attr)
	}
	if _, ok := container.Expression.(*ep.StringLiteral); ok {
		return invalidRefExpression(attr)
	}

	expression := container.Expression
	var name string
	if ep.IsThisMember(expression) {
		name = t.unit.DynamicRef.Add(expression)
	} else {
		name = ep.Stringify(expression)
	}
	ref := ml_parser.NewStringLiteral(name, container.SourceSpan())
	attr.Value = ref

	info := &ComponentRefInfo{Name: name, Method: expression, Kind: RefKindNative}
	if parent.IsMemberTag() || (parent.IsCustom && !schema.IsNative(t.components, parent)) {
		info.Kind = RefKindComponent
		injectComRef(parent, expression, ref, t.adapter.TriggerRef)
	}

	idAttr := parent.FindAttr("id")
	switch {
	case idAttr == nil:
		idAttr = ml_parser.NewAttribute("id", ml_parser.NewStringLiteral(t.unit.Ids.GenerateId(), nil), nil, nil)
		parent.AppendAttr(idAttr)
	case idAttr.Value == nil:
		// <view id ref={x} /> gets a generated value
		idAttr.Value = ml_parser.NewStringLiteral(t.unit.Ids.GenerateId(), idAttr.SourceSpan())
	}
	info.ID = idValue(idAttr.Value)

	t.refs = append(t.refs, info)
	return nil
}

func invalidRefExpression(attr *ml_parser.Attribute) error {
	return util.NewCodeError(util.InvalidRefExpression, attr.SourceSpan(),
		"ref must be an expression container, like <View ref={scrollRef} />")
}

// idValue returns the id an element is rendered with. Dynamic ids keep their
// template form. Valueless ids have been given a generated value by then.
func idValue(value ml_parser.AttrValue) string {
	switch v := value.(type) {
	case *ml_parser.StringLiteral:
		return v.Value
	case *ml_parser.ExpressionContainer:
		return "{{" + ep.Stringify(v.Expression) + "}}"
	case *ml_parser.ExpressionValue:
		return "{{" + ep.Stringify(v.Expression) + "}}"
	}
	return ""
}
