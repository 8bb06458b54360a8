package statusbar_test

import (
	"fmt"

	"github.com/riordanpawley/outcome/internal/types"
	"github.com/riordanpawley/outcome/internal/ui/statusbar"
	"github.com/riordanpawley/outcome/internal/ui/styles"
)

// Example demonstrates how to use the StatusBar
func Example() {
	sb := statusbar.New(types.ModeBrowse, 80, styles.New())

	// Rendered output includes ANSI codes for styling
	fmt.Println(len(sb.Render()) > 0)
	// Output: true
}

// ExampleGetHints shows how to get hints for different modes
func ExampleGetHints() {
	fmt.Println(statusbar.GetHints(types.ModeBrowse))
	// Output: j/k: scenario  Enter: run  r: reload  q: quit
}
