// Package javawriter streams Java source text to an io.Writer.
//
// Callers describe the file with begin/emit/end calls; the Writer indents
// each line from its stack of open scopes, checks that every end call
// closes the construct that is actually open, and shortens qualified type
// names using the imports emitted so far:
//
//	w := javawriter.New(os.Stdout)
//	w.EmitPackage("com.example")
//	w.EmitImports("java.util.List")
//	w.BeginType("com.example.Foo", "class", javawriter.Public, "")
//	w.BeginMethod("int", "size", javawriter.Public, []string{"java.util.List", "items"}, nil)
//	w.EmitStatement("return items.size()")
//	w.EndMethod()
//	w.EndType()
//
// Every call writes straight through to the underlying writer; nothing is
// buffered between calls. Sequencing mistakes are reported as errors that
// wrap the sentinels in the errors package (ErrScopeMismatch and friends),
// and are detected before anything for that call is written.
package javawriter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/javagen/errors"
	"github.com/teranos/javagen/logger"
)

// DefaultIndent is one level of indentation.
const DefaultIndent = "  "

// Writer emits Java source to an underlying io.Writer, which it owns until Close.
// A Writer is not safe for concurrent use.
type Writer struct {
	out    io.Writer
	err    error // first error returned by out; sticky
	closed bool

	imports       *importTable
	packageSet    bool
	packagePrefix string

	scopes scopeStack
	types  []string // names of open type declarations, innermost last

	compress bool
	indent   string
	log      *zap.SugaredLogger
}

// Option configures a Writer.
type Option func(*Writer)

// WithIndent sets the string written for one level of nesting.
func WithIndent(indent string) Option {
	return func(w *Writer) { w.indent = indent }
}

// WithCompression turns type name compression on or off.
func WithCompression(enabled bool) Option {
	return func(w *Writer) { w.compress = enabled }
}

// WithLogger sets the logger used for debug tracing of scopes and imports.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(w *Writer) {
		if l != nil {
			w.log = l
		}
	}
}

// New returns a Writer that emits to out.
func New(out io.Writer, opts ...Option) *Writer {
	w := &Writer{
		out:      out,
		imports:  newImportTable(),
		compress: true,
		indent:   DefaultIndent,
		log:      logger.ComponentLogger("javawriter"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Indent returns the string written for one level of nesting.
func (w *Writer) Indent() string { return w.indent }

// SetIndent sets the string written for one level of nesting.
func (w *Writer) SetIndent(indent string) { w.indent = indent }

// CompressingTypes reports whether type names are being compressed.
func (w *Writer) CompressingTypes() bool { return w.compress }

// SetCompressingTypes turns type name compression on or off.
func (w *Writer) SetCompressingTypes(enabled bool) { w.compress = enabled }

// Depth returns the number of open scopes. It is zero once every begun
// construct has been ended.
func (w *Writer) Depth() int { return w.scopes.depth() }

// Imports returns the registered imports in registration order.
func (w *Writer) Imports() []Import { return w.imports.entries() }

// EmitPackage writes the package declaration. It must be called exactly
// once, before anything whose type names are compressed. An empty name
// selects the default package and writes nothing.
func (w *Writer) EmitPackage(name string) error {
	if err := w.ready(); err != nil {
		return err
	}
	if w.packageSet {
		return errors.Wrapf(errors.ErrPackageAlreadySet, "package %q", name)
	}
	w.packageSet = true
	if name == "" {
		w.packagePrefix = ""
	} else {
		w.write("package ", name, ";\n\n")
		w.packagePrefix = name + "."
	}
	w.log.Debugw("Package set", logger.FieldPackage, name)
	return w.err
}

// EmitImports writes one import statement per name, sorted. Repeats within
// one call collapse; a name imported by an earlier call is an error.
func (w *Writer) EmitImports(names ...string) error {
	return w.emitImports("import ", names)
}

// EmitStaticImports writes one static import per name, sorted, with the
// same rules as EmitImports. Static members share the import table, so
// java.lang.Math.max compresses to max.
func (w *Writer) EmitStaticImports(names ...string) error {
	return w.emitImports("import static ", names)
}

func (w *Writer) emitImports(keyword string, names []string) error {
	if err := w.ready(); err != nil {
		return err
	}
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	unique := sorted[:0]
	for i, name := range sorted {
		if i == 0 || name != sorted[i-1] {
			unique = append(unique, name)
		}
	}

	for _, name := range unique {
		if _, err := w.imports.check(name); err != nil {
			return err
		}
	}
	for _, name := range unique {
		short, err := w.imports.add(name)
		if err != nil {
			return err
		}
		w.write(keyword, name, ";\n")
		w.log.Debugw("Import registered", logger.FieldImport, name, "short_name", short)
	}
	return w.err
}

// BeginType opens a type declaration such as a class, interface or enum.
// extends may be empty. Types nest only inside other types.
func (w *Writer) BeginType(typ, kind string, modifiers Modifier, extends string, implements ...string) error {
	if err := w.ready(); err != nil {
		return err
	}
	if w.scopes.depth() > 0 && !w.scopes.inTypeBody() {
		return errors.WithHint(
			errors.NewScopeMismatch("type %s inside %s", typ, w.scopes.describeTop()),
			"types may only be declared at file level or inside another type",
		)
	}
	if err := w.requireCompression(typ); err != nil {
		return err
	}

	w.writeIndent()
	w.writeModifiers(modifiers)
	w.write(kind, " ", w.typeName(typ))
	if extends != "" {
		w.write(" extends ", w.typeName(extends))
	}
	if len(implements) > 0 {
		w.write("\n")
		w.writeIndent()
		w.write("    implements ")
		w.writeTypeList(implements)
	}
	w.write(" {\n")
	w.pushScope(ScopeType)
	w.types = append(w.types, typ)
	return w.err
}

// EndType closes the innermost type declaration.
func (w *Writer) EndType() error {
	if err := w.ready(); err != nil {
		return err
	}
	if err := w.popScope(ScopeType); err != nil {
		return err
	}
	w.types = w.types[:len(w.types)-1]
	w.writeIndent()
	w.write("}\n")
	return w.err
}

// BeginMethod opens a method declaration. parameters alternates types and
// names. An abstract method is written with a terminating semicolon and no
// body, but must still be closed with EndMethod. An empty returnType
// declares a constructor named name.
func (w *Writer) BeginMethod(returnType, name string, modifiers Modifier, parameters, throws []string) error {
	if err := w.ready(); err != nil {
		return err
	}
	return w.beginMethod(returnType, name, modifiers, parameters, throws)
}

// BeginConstructor opens a constructor of the innermost open type.
func (w *Writer) BeginConstructor(modifiers Modifier, parameters, throws []string) error {
	if err := w.ready(); err != nil {
		return err
	}
	if err := w.scopes.requireTypeBody("constructor"); err != nil {
		return err
	}
	return w.beginMethod("", w.types[len(w.types)-1], modifiers, parameters, throws)
}

func (w *Writer) beginMethod(returnType, name string, modifiers Modifier, parameters, throws []string) error {
	if err := w.scopes.requireTypeBody("method " + name); err != nil {
		return err
	}
	if len(parameters)%2 != 0 {
		return errors.WithHint(
			errors.Wrapf(errors.ErrInvalidParameterList, "method %s has %d parameter entries", name, len(parameters)),
			"parameters alternate type and name: {\"int\", \"count\", \"String\", \"label\"}",
		)
	}
	if err := w.requireCompression(name); err != nil {
		return err
	}

	w.writeIndent()
	w.writeModifiers(modifiers)
	if returnType != "" {
		w.write(w.typeName(returnType), " ", name)
	} else {
		w.write(w.typeName(name))
	}
	w.write("(")
	for p := 0; p < len(parameters); p += 2 {
		if p != 0 {
			w.write(", ")
		}
		w.write(w.typeName(parameters[p]), " ", parameters[p+1])
	}
	w.write(")")
	if len(throws) > 0 {
		w.write("\n")
		w.writeIndent()
		w.write("    throws ")
		w.writeTypeList(throws)
	}

	switch {
	case modifiers.Has(Abstract):
		w.write(";\n")
		w.pushScope(ScopeAbstractMethod)
	case returnType == "":
		w.write(" {\n")
		w.pushScope(ScopeConstructor)
	default:
		w.write(" {\n")
		w.pushScope(ScopeMethod)
	}
	return w.err
}

// EndMethod closes the innermost method. Closing an abstract method writes nothing.
// Constructors may be closed with EndMethod as well.
func (w *Writer) EndMethod() error {
	if err := w.ready(); err != nil {
		return err
	}
	popped, err := w.popScopeAny(ScopeMethod, ScopeConstructor, ScopeAbstractMethod)
	if err != nil {
		return err
	}
	if popped != ScopeAbstractMethod {
		w.writeIndent()
		w.write("}\n")
	}
	return w.err
}

// EndConstructor closes the innermost constructor.
func (w *Writer) EndConstructor() error {
	return w.endBlock(ScopeConstructor)
}

// BeginInitializer opens a static or instance initializer block.
func (w *Writer) BeginInitializer(static bool) error {
	if err := w.ready(); err != nil {
		return err
	}
	if err := w.scopes.requireTypeBody("initializer"); err != nil {
		return err
	}
	w.writeIndent()
	if static {
		w.write("static {\n")
	} else {
		w.write("{\n")
	}
	w.pushScope(ScopeInitializer)
	return w.err
}

// EndInitializer closes the innermost initializer.
func (w *Writer) EndInitializer() error {
	return w.endBlock(ScopeInitializer)
}

// BeginControlFlow opens a block such as "if (x)" or "for (int i = 0; i < n; i++)".
// controlFlow is formatted with args when any are given.
func (w *Writer) BeginControlFlow(controlFlow string, args ...any) error {
	if err := w.ready(); err != nil {
		return err
	}
	if err := w.scopes.requireMethod("control flow"); err != nil {
		return err
	}
	w.writeIndent()
	w.write(format(controlFlow, args), " {\n")
	w.pushScope(ScopeControlFlow)
	return w.err
}

// NextControlFlow closes the current control flow block and opens a
// continuation such as "else" or "catch (IOException e)" at the same depth.
func (w *Writer) NextControlFlow(controlFlow string, args ...any) error {
	if err := w.ready(); err != nil {
		return err
	}
	if err := w.popScope(ScopeControlFlow); err != nil {
		return err
	}
	w.writeIndent()
	w.pushScope(ScopeControlFlow)
	w.write("} ", format(controlFlow, args), " {\n")
	return w.err
}

// EndControlFlow closes the current control flow block.
func (w *Writer) EndControlFlow() error {
	return w.endBlock(ScopeControlFlow)
}

// EndControlFlowWith closes the current control flow block with a trailing
// clause, as in "} while (more);".
func (w *Writer) EndControlFlowWith(controlFlow string, args ...any) error {
	if err := w.ready(); err != nil {
		return err
	}
	if err := w.popScope(ScopeControlFlow); err != nil {
		return err
	}
	w.writeIndent()
	w.write("} ", format(controlFlow, args), ";\n")
	return w.err
}

// BeginSwitch opens a switch statement on expr.
func (w *Writer) BeginSwitch(expr string) error {
	if err := w.ready(); err != nil {
		return err
	}
	if err := w.scopes.requireMethod("switch"); err != nil {
		return err
	}
	w.writeIndent()
	w.pushScope(ScopeSwitch)
	w.write("switch(", expr, ") {\n")
	return w.err
}

// EndSwitch closes the innermost switch statement.
func (w *Writer) EndSwitch() error {
	return w.endBlock(ScopeSwitch)
}

// EmitField writes a field declaration. initialValue may be empty.
func (w *Writer) EmitField(typ, name string, modifiers Modifier, initialValue string) error {
	if err := w.ready(); err != nil {
		return err
	}
	if err := w.requireCompression(typ); err != nil {
		return err
	}
	w.writeIndent()
	w.writeModifiers(modifiers)
	w.write(w.typeName(typ), " ", name)
	if initialValue != "" {
		w.write(" = ", initialValue)
	}
	w.write(";\n")
	return w.err
}

// EmitStatement writes a statement terminated by a semicolon. pattern is
// formatted with args when any are given. Lines after the first are
// written with a hanging indent two levels deeper than the statement.
func (w *Writer) EmitStatement(pattern string, args ...any) error {
	if err := w.ready(); err != nil {
		return err
	}
	if err := w.scopes.requireMethod("statement"); err != nil {
		return err
	}
	lines := strings.Split(format(pattern, args), "\n")
	w.writeIndent()
	w.write(lines[0])
	for _, line := range lines[1:] {
		w.write("\n")
		w.writeIndentN(w.scopes.depth() + 2)
		w.write(line)
	}
	w.write(";\n")
	return w.err
}

// EmitEnumValue writes an enum constant followed by a comma.
func (w *Writer) EmitEnumValue(name string) error {
	return w.emitEnumValue(name, ",\n")
}

// EmitLastEnumValue writes the final enum constant followed by a semicolon.
func (w *Writer) EmitLastEnumValue(name string) error {
	return w.emitEnumValue(name, ";\n")
}

// EmitEnumValues writes each constant, terminating the last with a semicolon.
func (w *Writer) EmitEnumValues(names ...string) error {
	for i, name := range names {
		var err error
		if i == len(names)-1 {
			err = w.EmitLastEnumValue(name)
		} else {
			err = w.EmitEnumValue(name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) emitEnumValue(name, terminator string) error {
	if err := w.ready(); err != nil {
		return err
	}
	w.writeIndent()
	w.write(name, terminator)
	return w.err
}

// EmitSingleLineComment writes a // comment. comment is formatted with args when any are given.
func (w *Writer) EmitSingleLineComment(comment string, args ...any) error {
	if err := w.ready(); err != nil {
		return err
	}
	w.writeIndent()
	w.write("// ", format(comment, args), "\n")
	return w.err
}

// EmitJavadoc writes a /** */ block, one " * " line per line of text.
// Trailing empty lines are dropped.
func (w *Writer) EmitJavadoc(javadoc string, args ...any) error {
	if err := w.ready(); err != nil {
		return err
	}
	w.writeIndent()
	w.write("/**\n")
	for _, line := range javadocLines(format(javadoc, args)) {
		w.writeIndent()
		w.write(" *")
		if line != "" {
			w.write(" ", line)
		}
		w.write("\n")
	}
	w.writeIndent()
	w.write(" */\n")
	return w.err
}

// javadocLines splits text on newlines, dropping trailing empty lines. Text
// without any newline is a single line, even when empty.
func javadocLines(text string) []string {
	if !strings.Contains(text, "\n") {
		return []string{text}
	}
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// EmitEmptyLine writes a blank line.
func (w *Writer) EmitEmptyLine() error {
	if err := w.ready(); err != nil {
		return err
	}
	w.write("\n")
	return w.err
}

// Close releases the underlying writer, closing it if it is an io.Closer.
// It does not check that every scope was ended; use Depth for that.
func (w *Writer) Close() error {
	if w.closed {
		return errors.Wrap(errors.ErrClosed, "close")
	}
	w.closed = true
	if c, ok := w.out.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ready fails if the writer was closed or its sink already failed.
func (w *Writer) ready() error {
	if w.closed {
		return errors.WithHint(errors.ErrClosed, "the writer cannot be used after Close")
	}
	return w.err
}

func (w *Writer) write(parts ...string) {
	for _, s := range parts {
		if w.err != nil {
			return
		}
		_, w.err = io.WriteString(w.out, s)
	}
}

func (w *Writer) writeIndent() {
	w.writeIndentN(w.scopes.depth())
}

func (w *Writer) writeIndentN(n int) {
	for i := 0; i < n; i++ {
		w.write(w.indent)
	}
}

func (w *Writer) writeModifiers(modifiers Modifier) {
	for _, keyword := range modifiers.Keywords() {
		w.write(keyword, " ")
	}
}

func (w *Writer) writeTypeList(types []string) {
	for i, t := range types {
		if i != 0 {
			w.write(", ")
		}
		w.write(w.typeName(t))
	}
}

func (w *Writer) pushScope(s Scope) {
	w.scopes.push(s)
	w.log.Debugw("Scope opened", logger.FieldScope, s.String(), logger.FieldDepth, w.scopes.depth())
}

func (w *Writer) popScope(expected Scope) error {
	_, err := w.popScopeAny(expected)
	return err
}

func (w *Writer) popScopeAny(expected ...Scope) (Scope, error) {
	popped, err := w.scopes.pop(expected...)
	if err != nil {
		return 0, err
	}
	w.log.Debugw("Scope closed", logger.FieldScope, popped.String(), logger.FieldDepth, w.scopes.depth())
	return popped, nil
}

// endBlock closes a scope whose end is a lone closing brace.
func (w *Writer) endBlock(expected Scope) error {
	if err := w.ready(); err != nil {
		return err
	}
	if err := w.popScope(expected); err != nil {
		return err
	}
	w.writeIndent()
	w.write("}\n")
	return w.err
}

// format applies fmt.Sprintf only when there are arguments, so literal
// percent signs in pre-built text survive.
func format(pattern string, args []any) string {
	if len(args) == 0 {
		return pattern
	}
	return fmt.Sprintf(pattern, args...)
}
