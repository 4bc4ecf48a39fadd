package seed

// Entry is a single bookmark entry in the seed YAML.
type Entry struct {
	Time float64 `yaml:"time"`
	Desc string  `yaml:"desc"`
}

// File is the root structure of bookmarks.yaml: one list per video key.
//
//	abc123:
//	  - time: 12.5
//	    desc: "hook starts"
//	  - time: 93.25
//	    desc: "chorus"
type File map[string][]Entry
