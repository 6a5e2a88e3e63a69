package rewriter

// Case is one self-test scenario: a source fragment, the exact expected
// rewrite, and whether processing must fail instead. A Case with an empty
// Want and WantErr false expects the input to pass through unchanged.
type Case struct {
	Name    string
	Input   string
	Want    string
	WantErr bool
	Opts    Options
}

// Expected returns the output the case must produce.
func (c Case) Expected() string {
	if c.Want == "" && !c.WantErr {
		return c.Input
	}
	return c.Want
}

// Corpus returns the built-in self-test table: pass-through scenarios,
// every rewrite feature, and the structural errors that must be fatal.
func Corpus() []Case {
	return []Case{
		// Plain pass-through
		{Name: "empty input", Input: ""},
		{Name: "plain line without newline", Input: "x = y"},
		{Name: "plain line", Input: "x = y\n"},

		// Preprocessor directives
		{Name: "directive", Input: "#x = y\n"},
		{Name: "directive with unbalanced quote", Input: "#x = y\"\n"},
		{Name: "directive continuation with unbalanced quote", Input: "#x = y\\ \n\" c\"\\n"},
		{Name: "directive with two continuations", Input: "#x = y\\ \nfoo \\\n\" c\"\\n"},
		{Name: "directive ends at continuation", Input: "#x = y \\", WantErr: true},

		// Comments
		{Name: "line comment", Input: "xx // foo"},
		{Name: "spliced line comment with unbalanced quote", Input: "xx // foo \\ \nc \""},
		{Name: "block comment with unbalanced quote", Input: "xx /* \" */ yy"},
		{Name: "multi-line block comment", Input: "xx /* ss\n \" */ yy"},
		{Name: "unterminated block comment", Input: "xx /* ss", WantErr: true},
		{Name: "unterminated multi-line block comment", Input: "xx /* ss\n \"/ yy *", WantErr: true},
		{Name: "input ends in spliced line comment", Input: "xx //  \\", WantErr: true},

		// Ordinary literals
		{Name: "empty literal", Input: `""`},
		{Name: "simple literal", Input: `"foo.bar"`},
		{Name: "escaped quote", Input: `"foo\"bar"`},
		{Name: "escaped backslash", Input: `"foo\\bar"`},
		{Name: "literal continuation line", Input: "\"foo\\\n\\\"bar\""},
		{Name: "char literal", Input: "c = 'a';"},
		{Name: "digit separators", Input: "n = 1'000'000;"},
		{Name: "digit separators after hex letter", Input: "int n = 0xff'232'111;\n"},
		{Name: "unterminated literal", Input: `foo "`, WantErr: true},
		{Name: "unterminated literal on second line", Input: "foo\n\"", WantErr: true},
		{Name: "literal continuation never closes", Input: "\"foo\\ \nbar", WantErr: true},
		{Name: "literal ends in backslash", Input: `"foo\`, WantErr: true},

		// Raw literals
		{Name: "empty raw literal", Input: `R"()"`},
		{Name: "empty raw literal with delimiter", Input: `R"xy()xy"`},
		{Name: "raw literal", Input: `R"xy(foo.bar)xy"`},
		{Name: "quote in raw literal", Input: `R"xy(foo".bar)xy"`},
		{Name: "backslash quote in raw literal", Input: `R"xy(foo\"bar)xy"`},
		{Name: "double backslash in raw literal", Input: `R"xy(foo\\bar)xy"`},
		{Name: "mismatched raw endings before real one", Input: `R"xy(foo)"bar)yx"fum)xy"`},
		{Name: "multi-line raw literal", Input: "R\"xy(foo\n\"bar)xy\""},
		{Name: "raw literal closing in column one", Input: "R\"xy(foo\n)xy\""},
		{Name: "line ends in raw prefix", Input: `R"abc`, WantErr: true},
		{Name: "line ends in raw prefix mid input", Input: "R\"abc\nd)", WantErr: true},
		{Name: "unterminated raw literal", Input: `foo R"xy(`, WantErr: true},
		{Name: "unterminated raw literal on second line", Input: "foo\nR\"(xy)z\"", WantErr: true},
		{Name: "raw delimiter mismatch empty vs z", Input: `foo R"(xy)z"`, WantErr: true},
		{Name: "raw delimiter mismatch w vs z", Input: `foo R"w(xy)z")"`, WantErr: true},
		{Name: "unterminated raw two lines no delimiter", Input: "R\"(foo \nbar", WantErr: true},
		{Name: "unterminated raw two lines", Input: "R\"xy(foo \nbar", WantErr: true},
		{Name: "mismatched raw delimiter two lines", Input: "R\"xy(foo \nbar)yx\"", WantErr: true},

		// Field extraction
		{
			Name:  "f literal",
			Input: `f"The number is: {3 * 5}"`,
			Want:  `std::format("The number is: {}", 3 * 5)`,
		},
		{
			Name:  "x literal",
			Input: `x"The numbers are: {a} and {b}"`,
			Want:  `"The numbers are: {} and {}", a, b`,
		},
		{
			Name:  "x literal ignores function name",
			Input: `x"The numbers are: {a} and {b}"`,
			Want:  `"The numbers are: {} and {}", a, b`,
			Opts:  Options{FunctionName: "fmt"},
		},
		{
			Name:  "format specs",
			Input: `x"The numbers are: {a:x} and {b:5}"`,
			Want:  `"The numbers are: {:x} and {:5}", a, b`,
		},
		{
			Name:  "nested field in format spec",
			Input: `f"The number is: {a:{b}}"`,
			Want:  `std::format("The number is: {:{}}", a, b)`,
		},
		{
			Name:  "nested field amid format spec text",
			Input: `f"The number is: {a:x{b}d}"`,
			Want:  `std::format("The number is: {:x{}d}", a, b)`,
		},
		{
			Name:  "ternary colon",
			Input: `f"The number is: {a ? b : c :4d}"`,
			Want:  `std::format("The number is: {:4d}", a ? b : c )`,
		},
		{
			Name:  "nested ternary left",
			Input: `f"The number is: {a ? b ? c : d : c :4d}"`,
			Want:  `std::format("The number is: {:4d}", a ? b ? c : d : c )`,
		},
		{
			Name:  "nested ternary right",
			Input: `f"The number is: {a ? b : c ? d : e :4d}"`,
			Want:  `std::format("The number is: {:4d}", a ? b : c ? d : e )`,
		},
		{
			Name:  "braced initializer in field",
			Input: `f"The number is: {MyType{}}"`,
			Want:  `std::format("The number is: {}", MyType{})`,
		},
		{
			Name:  "escaped braces",
			Input: `f"Just braces {{a}} {a}"`,
			Want:  `std::format("Just braces {a} {}", a)`,
		},
		{
			Name:  "scope resolution",
			Input: `f"Use colon colon {std::rand()}"`,
			Want:  `std::format("Use colon colon {}", std::rand())`,
		},
		{
			Name:  "scope resolution with format spec",
			Input: `f"Use colon colon {std::rand():fmt}"`,
			Want:  `std::format("Use colon colon {:fmt}", std::rand())`,
		},

		// Comments inside fields
		{
			Name:  "comment in field",
			Input: `f"The number is: {3 /* comment */ * 5}"`,
			Want:  `std::format("The number is: {}", 3 /* comment */ * 5)`,
		},
		{
			Name:  "colon hidden in comment",
			Input: `f"The number is: {3 /* : ignored */ * 5:fmt}"`,
			Want:  `std::format("The number is: {:fmt}", 3 /* : ignored */ * 5)`,
		},
		{
			Name:  "brace hidden in comment",
			Input: `f"The number is: {3 /* } ignored */ * 5:f{m}t}"`,
			Want:  `std::format("The number is: {:f{}t}", 3 /* } ignored */ * 5, m)`,
		},
		{
			Name: "spliced comment in field",
			Input: `f"The number is: {3 /* comment \
continues */ * 5}"`,
			Want: `std::format("The number is: {}", 3 /* comment \
continues */ * 5)`,
		},

		// Raw extraction literals
		{
			Name:  "x raw literal",
			Input: `xR"(The numbers are: {a} and {b})"`,
			Want:  `R"(The numbers are: {} and {})", a, b`,
		},
		{
			Name:  "x raw literal with delimiter",
			Input: `xR"xy(The numbers are: {a} and {b})xy"`,
			Want:  `R"xy(The numbers are: {} and {})xy", a, b`,
		},
		{
			Name: "multi-line comment in raw field",
			Input: `fR"(The number is: {3 /* comment
continues */ * 5})"`,
			Want: `std::format(R"(The number is: {})", 3 /* comment
continues */ * 5)`,
		},
		{
			Name: "raw ending lookalikes in raw field comment",
			Input: `fR"xy(The number is: {3 /* comment
xy) )" yx)" continues */ * 5})xy"`,
			Want: `std::format(R"xy(The number is: {})xy", 3 /* comment
xy) )" yx)" continues */ * 5)`,
		},

		// Structural errors
		{Name: "undoubled closing brace", Input: `f"Just braces {{} {a}"`, WantErr: true},
		{Name: "colon in nested field", Input: `f"The number is: {a:x{b:x}d}"`, WantErr: true},
		{Name: "line end in field", Input: "f\"The number is: {3\n* 5}\"", WantErr: true},
		{Name: "literal ends inside field", Input: `f"The number is: {3 * 5"`, WantErr: true},
		{Name: "raw literal ends inside field", Input: `fR"xy(The number is: {3 * 5)xy"`, WantErr: true},
		{Name: "literal ends inside format spec", Input: `f"The number is: {3 * 5: a"`, WantErr: true},
		{Name: "raw literal ends inside format spec", Input: `fR"xy(The number is: {3 * 5: a)xy"`, WantErr: true},
		{Name: "literal ends inside nested field", Input: `f"The number is: {3 * 5:{3"`, WantErr: true},
		{Name: "raw literal ends inside nested field", Input: `fR"xy(The number is: {3 * 5:{3)xy"`, WantErr: true},
		{Name: "literal ends inside field comment", Input: `f"The number is: {3 * 5 /*comment "`, WantErr: true},
		{Name: "raw literal ends inside field comment", Input: `fR"x(The number is: {3 * 5 /*comment )x"`, WantErr: true},
		{Name: "input ends inside field comment", Input: `f"The number is: {3 * 5 /*comment\`, WantErr: true},
		{Name: "bracket mismatch in field", Input: `f"{(a]}"`, WantErr: true},
		{Name: "stray closer in field", Input: `f"{a)}"`, WantErr: true},
		{Name: "conditional missing its colon", Input: `f"{a ? b}"`, WantErr: true},
		{Name: "empty field", Input: `f"{}"`, WantErr: true},
		{Name: "blank field", Input: `f"{ }"`, WantErr: true},
		{Name: "empty nested field", Input: `f"{a:{}}"`, WantErr: true},
		{Name: "label without argument", Input: `f"{=}"`, WantErr: true},

		// Literals inside fields
		{
			Name:  "string literal in field",
			Input: `f"The number is: {std::strlen("He{ } j")}"`,
			Want:  `std::format("The number is: {}", std::strlen("He{ } j"))`,
		},
		{
			Name:  "raw literal in field",
			Input: `f"The number is: {std::strlen(R"(Hej)")}"`,
			Want:  `std::format("The number is: {}", std::strlen(R"(Hej)"))`,
		},
		{
			Name: "multi-line raw literal in field",
			Input: `f"The number is: {std::strlen(R"xy(Hej
{{}})xy")}"`,
			Want: `std::format("The number is: {}", std::strlen(R"xy(Hej
{{}})xy"))`,
		},

		// Extraction literals nested in fields
		{
			Name:  "f literal in f field",
			Input: `f"The number is: {f"Five: {5}"} end"`,
			Want:  `std::format("The number is: {} end", std::format("Five: {}", 5))`,
		},
		{
			Name: "spliced f literal in f field",
			Input: `f"The number is: {f"Fi\
ve: {5}"}"`,
			Want: `std::format("The number is: {}", std::format("Fi\
ve: {}", 5))`,
		},
		{
			Name:  "raw f literal in f field",
			Input: `f"The number is: {fR"xy(Five: {5})xy"}"`,
			Want:  `std::format("The number is: {}", std::format(R"xy(Five: {})xy", 5))`,
		},
		{
			Name: "multi-line raw f literal in f field",
			Input: `f"The number is: {fR"xy(Fi
ve: {5})xy"}"`,
			Want: `std::format("The number is: {}", std::format(R"xy(Fi
ve: {})xy", 5))`,
		},

		// Debug labels
		{
			Name:  "debug label",
			Input: `println(f"Extra {value=}");`,
			Want:  `println(std::format("Extra value={}", value));`,
		},
		{
			Name:  "debug label keeps spacing",
			Input: `f"{value = }"`,
			Want:  `std::format("value = {}", value)`,
		},
		{
			Name:  "debug label with format spec",
			Input: `f"{x=:>6}"`,
			Want:  `std::format("x={:>6}", x)`,
		},

		// Encoding prefixes
		{
			Name:  "u8 f literal",
			Input: `fu8"{a}"`,
			Want:  `std::format(u8"{}", a)`,
		},
		{
			Name:  "wide x literal",
			Input: `xL"v: {a}"`,
			Want:  `L"v: {}", a`,
		},
		{
			Name:  "u8 raw f literal",
			Input: `fu8R"(p: {a})"`,
			Want:  `std::format(u8R"(p: {})", a)`,
		},
		{Name: "plain u8 literal keeps braces", Input: `u8"no extraction {x}"`},

		// Directives containing extraction literals
		{
			Name:  "f literal in define",
			Input: "#define F f\"{x}\"\n",
			Want:  "#define F std::format(\"{}\", x)\n",
		},
		{Name: "block comment hides f literal in directive", Input: "#define X 1 /* f\"{a}\" */\n"},
		{Name: "line comment hides f literal in directive", Input: "#define Y 2 // f\"{b}\"\n"},
		{Name: "multi-line comment in directive", Input: "#define Z /* c1\nc2 */ 3\n"},

		// Argument count substitution
		{
			Name:  "count placeholder in function name",
			Input: `f"{a} and {b}"`,
			Want:  `make2("{} and {}", a, b)`,
			Opts:  Options{FunctionName: "make*"},
		},
	}
}
