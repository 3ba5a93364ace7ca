package palette

import (
	"fmt"
	"strings"
)

// Guidance describes where a base color belongs and where it does not.
type Guidance struct {
	Role    Role
	Summary string
	Use     []string
	Avoid   []string
}

var guidance = map[Role]Guidance{
	RolePrimary: {
		Summary: "Main accent for primary actions and important elements.",
		Use:     []string{"Primary buttons", "Important icons", "Active states and selected tabs"},
		Avoid:   []string{"Full-screen backgrounds", "Card or panel fills (use surface)"},
	},
	RoleSecondary: {
		Summary: "Complements the primary accent on supporting elements.",
		Use:     []string{"Secondary buttons", "Less prominent highlights", "Badges and labels"},
		Avoid:   []string{"Main application background", "Large cards or surfaces"},
	},
	RoleBackground: {
		Summary: "Fills screens and large canvas areas behind content.",
		Use:     []string{"Window and screen backgrounds", "Content canvases", "Neutral backdrop for cards and text"},
		Avoid:   []string{"Buttons or highlights", "Card or panel fills (use surface)"},
	},
	RoleSurface: {
		Summary: "Fills containers that sit on top of the background.",
		Use:     []string{"Cards", "Text fields", "Sheets, popovers and floating panels"},
		Avoid:   []string{"Accent color", "Main screen background"},
	},
	RoleSuccess: {
		Summary: "Marks confirmations and completed states.",
		Use:     []string{"Success banners", "Checkmarks and completion indicators", "Positive form feedback"},
		Avoid:   []string{"Buttons, backgrounds or text that are not status indicators"},
	},
	RoleWarning: {
		Summary: "Marks cautionary, non-critical states.",
		Use:     []string{"Warning banners", "Minor caution icons", "Callouts"},
		Avoid:   []string{"Body text", "Card backgrounds", "Primary buttons"},
	},
	RoleError: {
		Summary: "Marks failures and invalid input.",
		Use:     []string{"Error banners", "Field validation errors", "Error icons and text"},
		Avoid:   []string{"Backgrounds", "General-purpose buttons"},
	},
	RoleHighlight: {
		Summary: "Marks focused or selected interactive elements.",
		Use:     []string{"Input focus borders", "Selected buttons and toggles", "Row selection and active indicators"},
		Avoid:   []string{"Main background or surface fills", "Large content blocks"},
	},
}

// GuidanceFor returns the usage notes for role.
func GuidanceFor(role Role) (Guidance, bool) {
	g, ok := guidance[role]
	if !ok {
		return Guidance{}, false
	}
	g.Role = role
	return g, true
}

// Markdown renders the guidance as a markdown document. When base is non-nil
// the role's color in that palette is included.
func (g Guidance) Markdown(base *Base) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n", g.Role, g.Summary)
	if base != nil {
		fmt.Fprintf(&b, "\nValue: `%s`\n", base.Color(g.Role).Hex())
	}
	writeList(&b, "Use for", g.Use)
	writeList(&b, "Avoid", g.Avoid)
	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}
