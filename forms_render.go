package tuicore

// recipeKey is the (variant,tone,size,state) tuple forms_render resolves
// into a concrete Style, per §4.2 "Form recipe resolution".
type recipeKey struct {
	Variant, Tone, Size, State string
}

// recipeTable is the built-in set of resolved styles for common button,
// input, checkbox and slider combinations; there are no select or
// radioGroup entries. Grounded on
// the donor's widgets.go ProgressComponent bracket-fill style and tui.go's
// fluent Style builders — generalized into a lookup table keyed on the
// full tuple instead of one-off per-widget constructors. Any key absent
// from this table falls through to resolveAdHocRecipe, never an error:
// recipe resolution always produces *some* style (§9 Design Notes).
var recipeTable = map[recipeKey]Style{
	{Variant: "button", Tone: "primary", Size: "md", State: "default"}: {
		FG: RGB(255, 255, 255), BG: Named("primary"), Bold: true,
	},
	{Variant: "button", Tone: "primary", Size: "md", State: "hover"}: {
		FG: RGB(255, 255, 255), BG: Named("primaryHover"), Bold: true,
	},
	{Variant: "button", Tone: "primary", Size: "md", State: "disabled"}: {
		FG: Named("mutedFG"), BG: Named("mutedBG"), Dim: true,
	},
	{Variant: "button", Tone: "danger", Size: "md", State: "default"}: {
		FG: RGB(255, 255, 255), BG: Named("danger"), Bold: true,
	},
	{Variant: "input", Tone: "neutral", Size: "md", State: "default"}: {
		FG: Named("fg"), BG: Named("inputBG"),
	},
	{Variant: "input", Tone: "neutral", Size: "md", State: "focus"}: {
		FG: Named("fg"), BG: Named("inputBG"), Underline: true, UnderlineColor: Named("primary"),
	},
	{Variant: "input", Tone: "danger", Size: "md", State: "default"}: {
		FG: Named("danger"), BG: Named("inputBG"), Underline: true, UnderlineStyle: UnderlineCurly, UnderlineColor: Named("danger"),
	},
	{Variant: "checkbox", Tone: "neutral", Size: "md", State: "default"}: {
		FG: Named("fg"),
	},
	{Variant: "checkbox", Tone: "neutral", Size: "md", State: "checked"}: {
		FG: Named("primary"), Bold: true,
	},
	{Variant: "slider", Tone: "neutral", Size: "md", State: "default"}: {
		FG: Named("primary"), BG: Named("track"),
	},
}

// resolveRecipe looks up key in the built-in table, falling through to an
// ad-hoc palette derived from tone/state when the exact tuple isn't
// precomputed (e.g. an unlisted size).
func resolveRecipe(key recipeKey) Style {
	if s, ok := recipeTable[key]; ok {
		return s
	}
	return resolveAdHocRecipe(key)
}

// resolveAdHocRecipe derives a plausible style from tone and state alone
// when no exact (variant,tone,size,state) entry exists, so every tuple
// still resolves to something deterministic rather than a default-styled
// fallback that silently loses tone/state information.
func resolveAdHocRecipe(key recipeKey) Style {
	style := Style{FG: Named("fg")}
	switch key.Tone {
	case "primary":
		style.FG = Named("primary")
	case "danger":
		style.FG = Named("danger")
	case "success":
		style.FG = Named("success")
	case "warning":
		style.FG = Named("warning")
	}
	switch key.State {
	case "disabled":
		style.Dim = true
	case "focus", "hover":
		style.Bold = true
	case "checked", "selected":
		style.Bold = true
		style.Inverse = true
	}
	return style
}

// recipeKeyOf returns the (variant,tone,size,state) selector a form-like
// leaf resolves its style from, read off selectRecipeProps; blank fields
// default to the kind name, "neutral", "md" and "default".
func recipeKeyOf(node *VNode) recipeKey {
	sp, ok := node.Props.(selectRecipeProps)
	if !ok {
		return recipeKey{Variant: kindName(node.Kind), Tone: "neutral", Size: "md", State: "default"}
	}
	variant := sp.Variant
	if variant == "" {
		variant = kindName(node.Kind)
	}
	tone := sp.Tone
	if tone == "" {
		tone = "neutral"
	}
	size := sp.Size
	if size == "" {
		size = "md"
	}
	state := sp.State
	if state == "" {
		state = "default"
	}
	return recipeKey{Variant: variant, Tone: tone, Size: size, State: state}
}
