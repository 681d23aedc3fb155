package models

// Tool is a static catalog entry for an externally executed scanning tool.
// Catalog entries are immutable reference data.
type Tool struct {
	Name        string
	Category    string
	Description string

	// Tier is the minimum key tier required to invoke the tool.
	Tier KeyType
}

// catalog mirrors the scanner backend's tool set. Free-tier tools are
// dig, nmap and whatweb; everything else requires a paid subscription.
var catalog = []Tool{
	{
		Name:        "dig",
		Category:    "DNS",
		Description: "DNS lookup tool that provides information about DNS records",
		Tier:        KeyTypeFree,
	},
	{
		Name:        "nmap",
		Category:    "Network",
		Description: "Network discovery and security auditing tool",
		Tier:        KeyTypeFree,
	},
	{
		Name:        "whatweb",
		Category:    "Web",
		Description: "Web scanner that identifies web technologies",
		Tier:        KeyTypeFree,
	},
	{
		Name:        "sslscan",
		Category:    "Security",
		Description: "SSL/TLS scanner that tests SSL/TLS enabled services",
		Tier:        KeyTypePaid,
	},
	{
		Name:        "subfinder",
		Category:    "Discovery",
		Description: "Subdomain discovery tool",
		Tier:        KeyTypePaid,
	},
	{
		Name:        "wpscan",
		Category:    "CMS",
		Description: "WordPress security scanner",
		Tier:        KeyTypePaid,
	},
	{
		Name:        "nuclei",
		Category:    "Vulnerability",
		Description: "Fast and customizable vulnerability scanner",
		Tier:        KeyTypePaid,
	},
}

// Tools returns the full tool catalog in stable order.
func Tools() []Tool {
	out := make([]Tool, len(catalog))
	copy(out, catalog)
	return out
}

// ToolByName looks a tool up in the catalog.
func ToolByName(name string) (Tool, bool) {
	for _, t := range catalog {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}
