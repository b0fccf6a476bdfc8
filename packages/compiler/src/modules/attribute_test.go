package modules_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsx2mp-go/packages/compiler/src/codegen"
	"jsx2mp-go/packages/compiler/src/config"
	ep "jsx2mp-go/packages/compiler/src/expression_parser"
	"jsx2mp-go/packages/compiler/src/ml_parser"
	"jsx2mp-go/packages/compiler/src/modules"
	"jsx2mp-go/packages/compiler/src/util"
)

func parse(t *testing.T, adapter *config.Adapter, source string) *modules.Parsed {
	t.Helper()
	result := ml_parser.NewParser().Parse(source, "test.jsx")
	require.Empty(t, result.Errors)
	return modules.NewParsed(result.RootNodes, util.NewParseSourceFile(source, "test.jsx"), adapter)
}

func transform(t *testing.T, adapter *config.Adapter, source string) (*modules.Parsed, error) {
	t.Helper()
	parsed := parse(t, adapter, source)
	return parsed, modules.Parse(parsed)
}

func firstElement(t *testing.T, parsed *modules.Parsed) *ml_parser.Element {
	t.Helper()
	require.NotEmpty(t, parsed.TemplateAST)
	element, ok := parsed.TemplateAST[0].(*ml_parser.Element)
	require.True(t, ok, "first node is %T", parsed.TemplateAST[0])
	return element
}

func TestTransformAttribute(t *testing.T) {
	cases := []struct {
		name     string
		platform config.Platform
		source   string
		want     string
	}{
		// key
		{
			name:     "should rename key for ali and keep the expression",
			platform: config.PlatformAli,
			source:   `<view key={item.id} />`,
			want:     `<view a:key="{{item.id}}" />`,
		},
		{
			name:     "should turn a member key into its property name",
			platform: config.PlatformWeChat,
			source:   `<view key={item.id} />`,
			want:     `<view wx:key="id" />`,
		},
		{
			name:     "should turn an identifier key into its name",
			platform: config.PlatformByteDance,
			source:   `<view key={index} />`,
			want:     `<view tt:key="index" />`,
		},
		{
			name:     "should accept a computed string property key",
			platform: config.PlatformWeChat,
			source:   `<view key={item["uid"]} />`,
			want:     `<view wx:key="uid" />`,
		},
		{
			name:     "should accept a computed number property key",
			platform: config.PlatformWeChat,
			source:   `<view key={list[0]} />`,
			want:     `<view wx:key="0" />`,
		},
		{
			name:     "should keep other key expressions",
			platform: config.PlatformWeChat,
			source:   `<view key={"k" + index} />`,
			want:     `<view wx:key="{{&quot;k&quot; + index}}" />`,
		},
		{
			name:     "should keep a string key",
			platform: config.PlatformWeChat,
			source:   `<view key="id" />`,
			want:     `<view wx:key="id" />`,
		},
		{
			name:     "should rename key for quickapp",
			platform: config.PlatformQuickApp,
			source:   `<div key={item.id} />`,
			want:     `<div tid="{{item.id}}" />`,
		},

		// className
		{
			name:     "should rename className on a native element",
			platform: config.PlatformAli,
			source:   `<view className="container" />`,
			want:     `<view class="container" />`,
		},
		{
			name:     "should duplicate className on a custom component",
			platform: config.PlatformAli,
			source:   `<Child className={styles.root} />`,
			want:     `<Child className="{{styles.root}}" class="{{styles.root}}" />`,
		},
		{
			name:     "should keep className on a custom component with the style keyword",
			platform: config.PlatformWeChat,
			source:   `<Child className="a" />`,
			want:     `<Child className="a" />`,
		},
		{
			name:     "should rename className on a native element with the style keyword",
			platform: config.PlatformWeChat,
			source:   `<view className="a" />`,
			want:     `<view class="a" />`,
		},
		{
			name:     "should always rename className on quickapp",
			platform: config.PlatformQuickApp,
			source:   `<Child className="a" />`,
			want:     `<Child class="a" />`,
		},

		// style
		{
			name:     "should rename style on a custom component with the style keyword",
			platform: config.PlatformWeChat,
			source:   `<Child style={styles.box} />`,
			want:     `<Child styleSheet="{{styles.box}}" />`,
		},
		{
			name:     "should keep style on a native element",
			platform: config.PlatformWeChat,
			source:   `<view style={styles.box} />`,
			want:     `<view style="{{styles.box}}" />`,
		},
		{
			name:     "should keep style without the style keyword",
			platform: config.PlatformAli,
			source:   `<Child style={styles.box} />`,
			want:     `<Child style="{{styles.box}}" />`,
		},
		{
			name:     "should use style-sheet on a quickapp custom element",
			platform: config.PlatformQuickApp,
			source:   `<my-card style={styles.box} />`,
			want:     `<my-card style-sheet="{{styles.box}}" />`,
		},
		{
			name:     "should use styleSheet on a quickapp component",
			platform: config.PlatformQuickApp,
			source:   `<Child style={styles.box} />`,
			want:     `<Child styleSheet="{{styles.box}}" />`,
		},

		// ref
		{
			name:     "should rename a quickapp string ref to id",
			platform: config.PlatformQuickApp,
			source:   `<div ref="scrollRef" />`,
			want:     `<div id="scrollRef" />`,
		},
		{
			name:     "should stringify a quickapp expression ref",
			platform: config.PlatformQuickApp,
			source:   `<div ref={this.listRef} />`,
			want:     `<div id="this.listRef" />`,
		},
		{
			name:     "should bind a component ref by name",
			platform: config.PlatformWeChat,
			source:   `<Child ref={this.scrollRef} />`,
			want:     `<Child ref="_r0" bindComRef="_r0" id="id_0" />`,
		},
		{
			name:     "should bind a component ref by callback",
			platform: config.PlatformAli,
			source:   `<Child ref={this.scrollRef} />`,
			want:     `<Child ref="_r0" bindComRef="{{this.scrollRef}}" id="id_0" />`,
		},
		{
			name:     "should reuse an existing id",
			platform: config.PlatformAli,
			source:   `<view ref={inputRef} id="box" />`,
			want:     `<view ref="inputRef" id="box" />`,
		},
		{
			name:     "should treat a member tag as a component",
			platform: config.PlatformAli,
			source:   `<Foo.Bar ref={barRef} />`,
			want:     `<Foo.Bar ref="barRef" bindComRef="{{barRef}}" id="id_0" />`,
		},
		{
			name:     "should allocate ids in document order",
			platform: config.PlatformAli,
			source:   `<view><view ref={a} /><Child ref={this.b} /><view ref={this.c} /></view>`,
			want:     `<view><view ref="a" id="id_0" /><Child ref="_r0" bindComRef="{{this.b}}" id="id_1" /><view ref="_r1" id="id_2" /></view>`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := transform(t, config.AdapterFor(tc.platform), tc.source)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, codegen.GenTemplate(parsed.TemplateAST)); diff != "" {
				t.Errorf("template mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTransformAttributeIdentity(t *testing.T) {
	sources := []string{
		`<view data-id="1" onTap={this.handleTap} hidden />`,
		`<Child title={user.name} onChange={onChange} disabled={!enabled} />`,
		`<my-card a:if={show} tabindex=1>{label}</my-card>`,
		`<div onClick={handle} dataName="x">text</div>`,
	}

	for _, platform := range config.Platforms {
		for _, source := range sources {
			t.Run(platform.String()+" "+source, func(t *testing.T) {
				parsed, err := transform(t, config.AdapterFor(platform), source)
				require.NoError(t, err)

				if diff := cmp.Diff(codegen.GenTemplate(parse(t, config.AdapterFor(platform), source).TemplateAST),
					codegen.GenTemplate(parsed.TemplateAST)); diff != "" {
					t.Errorf("template mismatch (-want +got):\n%s", diff)
				}
				assert.Empty(t, parsed.Refs)
				assert.Zero(t, parsed.DynamicRef.Len())
			})
		}
	}
}

func TestClassNameDuplication(t *testing.T) {
	t.Run("should not alias the className and class values", func(t *testing.T) {
		parsed, err := transform(t, config.AdapterFor(config.PlatformAli), `<Child className={styles.root} />`)
		require.NoError(t, err)

		element := firstElement(t, parsed)
		className := element.FindAttr("className")
		class := element.FindAttr("class")
		require.NotNil(t, className)
		require.NotNil(t, class)
		require.NotSame(t, className.Value, class.Value)

		member := class.Value.(*ml_parser.ExpressionContainer).Expression.(*ep.MemberExpression)
		member.Property.(*ep.Identifier).Name = "other"

		assert.Equal(t, "styles.root", ep.Stringify(className.Value.(*ml_parser.ExpressionContainer).Expression))
		assert.Equal(t, "styles.other", ep.Stringify(class.Value.(*ml_parser.ExpressionContainer).Expression))
	})
}

func TestQuickAppStringRef(t *testing.T) {
	parsed, err := transform(t, config.AdapterFor(config.PlatformQuickApp), `<div ref="scrollRef" />`)
	require.NoError(t, err)

	want := []modules.RefEntry{&modules.StringRef{Value: "scrollRef"}}
	if diff := cmp.Diff(want, parsed.Refs); diff != "" {
		t.Errorf("Refs mismatch (-want +got):\n%s", diff)
	}
	assert.Zero(t, parsed.DynamicRef.Len())
	assert.Equal(t, "r", parsed.DynamicRef.Prefix())
}

func TestComponentRef(t *testing.T) {
	t.Run("should register an instance ref", func(t *testing.T) {
		parsed, err := transform(t, config.AdapterFor(config.PlatformWeChat), `<Child ref={this.scrollRef} />`)
		require.NoError(t, err)

		require.Equal(t, 1, parsed.DynamicRef.Len())
		expression, ok := parsed.DynamicRef.Lookup("_r0")
		require.True(t, ok)
		assert.Equal(t, "this.scrollRef", ep.Stringify(expression))

		require.Len(t, parsed.Refs, 1)
		info, ok := parsed.Refs[0].(*modules.ComponentRefInfo)
		require.True(t, ok, "ref is %T", parsed.Refs[0])
		assert.Equal(t, "_r0", info.Name)
		assert.Equal(t, modules.RefKindComponent, info.Kind)
		assert.Equal(t, "id_0", info.ID)
		assert.Same(t, expression, info.Method)

		element := firstElement(t, parsed)
		require.NotNil(t, element.FindAttr("bindComRef"))
		id := element.FindAttr("id")
		require.NotNil(t, id)
		assert.Equal(t, info.ID, id.Value.(*ml_parser.StringLiteral).Value)
	})

	t.Run("should mark native refs", func(t *testing.T) {
		parsed, err := transform(t, config.AdapterFor(config.PlatformAli), `<view ref={inputRef} id={"item-" + index} />`)
		require.NoError(t, err)

		require.Len(t, parsed.Refs, 1)
		info := parsed.Refs[0].(*modules.ComponentRefInfo)
		assert.Equal(t, modules.RefKindNative, info.Kind)
		assert.Equal(t, "inputRef", info.Name)
		assert.Equal(t, `{{"item-" + index}}`, info.ID)
		assert.Nil(t, firstElement(t, parsed).FindAttr("bindComRef"))
		assert.Zero(t, parsed.DynamicRef.Len())
	})

	t.Run("should keep refs in document order", func(t *testing.T) {
		parsed, err := transform(t, config.AdapterFor(config.PlatformAli),
			`<view><Child ref={this.first} /><text ref={second} /><Child ref={this.third} /></view>`)
		require.NoError(t, err)

		var names []string
		for _, ref := range parsed.Refs {
			names = append(names, ref.(*modules.ComponentRefInfo).Name)
		}
		if diff := cmp.Diff([]string{"_r0", "second", "_r1"}, names); diff != "" {
			t.Errorf("Refs mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should return the refs and the registry", func(t *testing.T) {
		parsed := parse(t, config.AdapterFor(config.PlatformAli), `<Child ref={this.scrollRef} />`)
		refs, registry, err := modules.TransformAttribute(parsed.TemplateAST, parsed.Adapter, parsed)
		require.NoError(t, err)
		assert.Len(t, refs, 1)
		assert.Same(t, parsed.DynamicRef, registry)
	})
}

func TestInvalidRef(t *testing.T) {
	cases := []struct {
		name     string
		platform config.Platform
		source   string
		kind     util.ErrorKind
		location string
	}{
		{
			name:     "should reject a number ref on quickapp",
			platform: config.PlatformQuickApp,
			source:   `<div ref=1 />`,
			kind:     util.InvalidRefValue,
			location: "test.jsx@1:6",
		},
		{
			name:     "should reject an empty ref on quickapp",
			platform: config.PlatformQuickApp,
			source:   "<div>\n  <div ref />\n</div>",
			kind:     util.InvalidRefValue,
			location: "test.jsx@2:8",
		},
		{
			name:     "should reject a string ref",
			platform: config.PlatformWeChat,
			source:   `<Child ref="scrollRef" />`,
			kind:     util.InvalidRefExpression,
			location: "test.jsx@1:8",
		},
		{
			name:     "should reject a string literal container ref",
			platform: config.PlatformAli,
			source:   `<Child ref={"scrollRef"} />`,
			kind:     util.InvalidRefExpression,
			location: "test.jsx@1:8",
		},
		{
			name:     "should reject an empty ref",
			platform: config.PlatformByteDance,
			source:   `<Child ref />`,
			kind:     util.InvalidRefExpression,
			location: "test.jsx@1:8",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := transform(t, config.AdapterFor(tc.platform), tc.source)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.kind), "got %v", err)

			var codeErr *util.CodeError
			require.ErrorAs(t, err, &codeErr)
			assert.Equal(t, tc.location, codeErr.Span.Start.String())

			assert.Empty(t, parsed.Refs)
			assert.Zero(t, parsed.DynamicRef.Len())
		})
	}

	t.Run("should not record anything for a failing ref", func(t *testing.T) {
		parsed := parse(t, config.AdapterFor(config.PlatformWeChat), `<view><Child ref={this.ok} /><Child ref="bad" /></view>`)
		refs, registry, err := modules.TransformAttribute(parsed.TemplateAST, parsed.Adapter, parsed)
		require.Error(t, err)
		assert.Nil(t, refs)
		assert.Nil(t, registry)
		assert.Equal(t, 1, parsed.DynamicRef.Len())

		bad := firstElement(t, parsed).Children[1].(*ml_parser.Element).FindAttr("ref")
		assert.Equal(t, "bad", bad.Value.(*ml_parser.StringLiteral).Value)
	})
}

func TestInvalidKey(t *testing.T) {
	parsed, err := transform(t, config.AdapterFor(config.PlatformWeChat), `<view key={item[field]} />`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, util.InvalidKeyExpression))
	assert.Contains(t, err.Error(), "item[field]")

	key := firstElement(t, parsed).Attrs[0]
	assert.Equal(t, "key", key.Name)

	t.Run("should not validate keys that are kept dynamic", func(t *testing.T) {
		_, err := transform(t, config.AdapterFor(config.PlatformAli), `<view key={item[field]} />`)
		assert.NoError(t, err)
	})
}

func TestGeneratedIds(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   string
		id     string
	}{
		{
			name:   "should skip an id written earlier",
			source: `<view><view id="id_0" /><Child ref={this.a} /></view>`,
			want:   `<view><view id="id_0" /><Child ref="_r0" bindComRef="{{this.a}}" id="id_1" /></view>`,
			id:     "id_1",
		},
		{
			name:   "should skip an id written later",
			source: `<view><Child ref={this.a} /><text id="id_0" /></view>`,
			want:   `<view><Child ref="_r0" bindComRef="{{this.a}}" id="id_1" /><text id="id_0" /></view>`,
			id:     "id_1",
		},
		{
			name:   "should fill a valueless id",
			source: `<view id ref={inputRef} />`,
			want:   `<view id="id_0" ref="inputRef" />`,
			id:     "id_0",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := transform(t, config.AdapterFor(config.PlatformAli), tc.source)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, codegen.GenTemplate(parsed.TemplateAST)); diff != "" {
				t.Errorf("template mismatch (-want +got):\n%s", diff)
			}
			require.Len(t, parsed.Refs, 1)
			assert.Equal(t, tc.id, parsed.Refs[0].(*modules.ComponentRefInfo).ID)
		})
	}
}

func TestTransformAttributeRunsOnce(t *testing.T) {
	parsed, err := transform(t, config.AdapterFor(config.PlatformAli), `<Child className="a" />`)
	require.NoError(t, err)
	_, _, err = modules.TransformAttribute(parsed.TemplateAST, parsed.Adapter, parsed)
	require.NoError(t, err)

	// A second run duplicates className again.
	assert.Equal(t, `<Child className="a" class="a" class="a" />`, codegen.GenTemplate(parsed.TemplateAST))
}
