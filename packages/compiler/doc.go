// Package compiler compiles JSX style component templates into the template
// languages of the mini-app platforms (ali, wechat, bytedance and quickapp).
//
// Main sub-packages:
//
//   - src: CompileTemplate and the Compiler driver used by cmd/jsx2mp-go
//   - src/ml_parser: JSX template parsing
//   - src/expression_parser: expressions found inside `{...}`
//   - src/modules: compile passes over the parsed template, e.g. the
//     attribute pass that rewrites key, className, style and ref
//   - src/binding: per template dynamic ref registry and id allocator
//   - src/schema: native component tables of every platform
//   - src/codegen: template printing
//   - src/config: platform adapters and adapter YAML files
//   - src/util: source locations and diagnostics
package compiler
