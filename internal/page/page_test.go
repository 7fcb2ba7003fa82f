package page

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const samplePage = `<!doctype html>
<html>
<head><script>var x = "<b>";</script><style>pre{}</style></head>
<body>
<div class="highlight"><pre id="__code_0"><span>&gt;&gt;&gt; </span>print(1)
</pre></div>
<button class="md-clipboard" data-clipboard-target="#__code_0" title="Copy"></button>
<a id="cp-lit" data-clipboard-text="pip install docclip">copy</a>
<button data-clipboard-target=".console" data-clipboard-text="ignored"></button>
<pre class="console block">$ ls
file1
</pre>
</body>
</html>`

func mustParse(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return doc
}

func TestTriggers(t *testing.T) {
	doc := mustParse(t, samplePage)

	want := []Trigger{
		{Index: 0, Tag: "button", Kind: KindTarget, Target: "#__code_0"},
		{Index: 1, Tag: "a", ID: "cp-lit", Kind: KindText, Text: "pip install docclip"},
		{Index: 2, Tag: "button", Kind: KindTarget, Target: ".console", Text: "ignored"},
	}
	if diff := cmp.Diff(want, doc.Triggers()); diff != "" {
		t.Errorf("Triggers() mismatch (-want +got):\n%s", diff)
	}
}

func TestTriggers_None(t *testing.T) {
	doc := mustParse(t, `<p>nothing to copy</p>`)

	if got := doc.Triggers(); len(got) != 0 {
		t.Errorf("Triggers() = %v, want none", got)
	}
}

func TestQuery(t *testing.T) {
	doc := mustParse(t, samplePage)

	tests := []struct {
		name     string
		selector string
		wantText string
	}{
		{name: "by id", selector: "#__code_0", wantText: ">>> print(1)\n"},
		{name: "by class", selector: ".console", wantText: "$ ls\nfile1\n"},
		{name: "tag and class", selector: "pre.console", wantText: "$ ls\nfile1\n"},
		{name: "tag and id", selector: "pre#__code_0", wantText: ">>> print(1)\n"},
		{name: "tag only", selector: "pre", wantText: ">>> print(1)\n"},
		{name: "surrounding space", selector: "  #cp-lit ", wantText: "copy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := doc.Query(tt.selector)
			if err != nil {
				t.Fatalf("Query(%q) error = %v", tt.selector, err)
			}
			if got := InnerText(n); got != tt.wantText {
				t.Errorf("InnerText = %q, want %q", got, tt.wantText)
			}
		})
	}
}

func TestQuery_Errors(t *testing.T) {
	doc := mustParse(t, samplePage)

	tests := []struct {
		name     string
		selector string
		wantErr  error
	}{
		{name: "missing id", selector: "#nope", wantErr: ErrNotFound},
		{name: "tag mismatch", selector: "div#__code_0", wantErr: ErrNotFound},
		{name: "empty", selector: "", wantErr: ErrBadSelector},
		{name: "descendant", selector: "div pre", wantErr: ErrBadSelector},
		{name: "attribute", selector: "[id=x]", wantErr: ErrBadSelector},
		{name: "compound id and class", selector: "#a.b", wantErr: ErrBadSelector},
		{name: "bare hash", selector: "#", wantErr: ErrBadSelector},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := doc.Query(tt.selector)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Query(%q) error = %v, want %v", tt.selector, err, tt.wantErr)
			}
		})
	}
}

func TestInnerText(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "line breaks",
			src:  `<div id="t">a<br>b<br/>c</div>`,
			want: "a\nb\nc",
		},
		{
			name: "hidden subtree skipped",
			src:  `<div id="t">shown<span hidden>secret</span></div>`,
			want: "shown",
		},
		{
			name: "script skipped",
			src:  `<div id="t">x<script>alert(1)</script>y</div>`,
			want: "xy",
		},
		{
			name: "entities decoded",
			src:  `<div id="t">a &amp;&amp; b &lt; c</div>`,
			want: "a && b < c",
		},
		{
			name: "nested spans",
			src:  `<pre id="t"><span>$ </span><span>echo</span> hi</pre>`,
			want: "$ echo hi",
		},
		{
			name: "block children on separate lines",
			src:  "<div id=\"t\">\n  <div>$ ls</div>\n  <div>$ pwd</div>\n</div>",
			want: "$ ls\n$ pwd",
		},
		{
			name: "paragraphs separated by blank line",
			src:  `<div id="t"><p>one</p><p>two</p></div>`,
			want: "one\n\ntwo",
		},
		{
			name: "list items",
			src:  "<ul id=\"t\">\n<li>a</li>\n<li><span>b</span> <span>c</span></li>\n</ul>",
			want: "a\nb c",
		},
		{
			name: "inline text around block",
			src:  `<div id="t">intro<div>body</div>outro</div>`,
			want: "intro\nbody\noutro",
		},
		{
			name: "whitespace collapsed outside pre",
			src:  "<div id=\"t\">a \n\t  b</div>",
			want: "a b",
		},
		{
			name: "pre inside block keeps whitespace",
			src:  "<div id=\"t\"><p>title</p><pre>x  =  1\n  y</pre></div>",
			want: "title\n\nx  =  1\n  y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, tt.src)
			n, err := doc.Query("#t")
			if err != nil {
				t.Fatalf("Query error = %v", err)
			}
			if got := InnerText(n); got != tt.want {
				t.Errorf("InnerText = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if KindTarget.String() != "target" || KindText.String() != "text" {
		t.Errorf("unexpected kind names: %s, %s", KindTarget, KindText)
	}
	if got := Kind(7).String(); got != "Kind(7)" {
		t.Errorf("Kind(7).String() = %q", got)
	}
}
