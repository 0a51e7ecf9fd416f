package tghtml_test

import (
	"fmt"

	"github.com/adriangalilea/tghtml"
)

func ExampleTransform() {
	fmt.Println(tghtml.Transform("<h1>Release notes</h1><p>We fixed <b>many</b> bugs.</p><ul><li>One</li><li>Two</li></ul>"))
	// Output:
	// <b><u>Release notes</u></b>
	//
	// We fixed <b>many</b> bugs.
	//
	// • One
	// • Two
}

func ExampleTransform_plainText() {
	fmt.Println(tghtml.Transform(`"M&M's" > Skittles`))
	// Output: &quot;M&amp;M's&quot; &gt; Skittles
}

func ExampleEscape() {
	fmt.Println(tghtml.Escape(`5 < 6 & "quotes"`))
	// Output: 5 &lt; 6 &amp; &quot;quotes&quot;
}
