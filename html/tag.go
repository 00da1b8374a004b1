package html

type tag struct {
	name   string
	parent *tag
}

func (t *tag) end() string {
	if t == nil {
		return ""
	} else {
		return "</" + t.name + ">"
	}
}

// voidTags have no content and no end tag.
var voidTags = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

func isVoid(name string) bool {
	return voidTags[name]
}
