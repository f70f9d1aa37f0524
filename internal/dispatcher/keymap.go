package dispatcher

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// BindDefaults installs the stock normal-mode keymap. Lowercase keys
// run the region form of a motion; the shifted key runs the same
// motion extending the current selection.
func (r *Registry) BindDefaults() error {
	defaults := []Binding{
		{Mode: "normal", Keys: "h", Action: "char-left"},
		{Mode: "normal", Keys: "l", Action: "char-right"},
		{Mode: "normal", Keys: "j", Action: "line-down"},
		{Mode: "normal", Keys: "k", Action: "line-up"},
		{Mode: "normal", Keys: "H", Action: "char-left", Extend: true},
		{Mode: "normal", Keys: "L", Action: "char-right", Extend: true},
		{Mode: "normal", Keys: "J", Action: "line-down", Extend: true},
		{Mode: "normal", Keys: "K", Action: "line-up", Extend: true},

		{Mode: "normal", Keys: "w", Action: "select-word-right"},
		{Mode: "normal", Keys: "W", Action: "select-word-right", Extend: true},
		{Mode: "normal", Keys: "b", Action: "select-word-left"},
		{Mode: "normal", Keys: "B", Action: "select-word-left", Extend: true},
		{Mode: "normal", Keys: "e", Action: "select-word-end"},
		{Mode: "normal", Keys: "E", Action: "select-word-end", Extend: true},
		{Mode: "normal", Keys: "M-w", Action: "select-bigword-right"},
		{Mode: "normal", Keys: "M-W", Action: "select-bigword-right", Extend: true},
		{Mode: "normal", Keys: "M-b", Action: "select-bigword-left"},
		{Mode: "normal", Keys: "M-B", Action: "select-bigword-left", Extend: true},

		{Mode: "normal", Keys: "f", Action: "select-find-forward"},
		{Mode: "normal", Keys: "F", Action: "select-find-forward", Extend: true},
		{Mode: "normal", Keys: "t", Action: "select-til-forward"},
		{Mode: "normal", Keys: "T", Action: "select-til-forward", Extend: true},
		{Mode: "normal", Keys: "M-f", Action: "select-find-backward"},
		{Mode: "normal", Keys: "M-t", Action: "til-backward"},

		{Mode: "normal", Keys: "x", Action: "select-line"},
		{Mode: "normal", Keys: "%", Action: "select-buffer"},
		{Mode: "normal", Keys: "M-p", Action: "select-paragraph"},

		{Mode: "normal", Keys: "gh", Action: "line-begin"},
		{Mode: "normal", Keys: "gi", Action: "line-first-nonblank"},
		{Mode: "normal", Keys: "gl", Action: "line-end"},
		{Mode: "normal", Keys: "gg", Action: "document-begin"},
		{Mode: "normal", Keys: "ge", Action: "document-end"},
		{Mode: "normal", Keys: "Gl", Action: "select-to-line-end"},
		{Mode: "normal", Keys: "Gh", Action: "select-to-line-begin"},

		{Mode: "normal", Keys: "]p", Action: "paragraph-forward"},
		{Mode: "normal", Keys: "[p", Action: "paragraph-backward"},
		{Mode: "normal", Keys: "]s", Action: "sentence-forward"},
		{Mode: "normal", Keys: "[s", Action: "sentence-backward"},
		{Mode: "normal", Keys: "]w", Action: "camel-right"},
		{Mode: "normal", Keys: "[w", Action: "camel-left"},
		{Mode: "normal", Keys: "]f", Action: "path-right"},
		{Mode: "normal", Keys: "[f", Action: "path-left"},
		{Mode: "normal", Keys: "]e", Action: "word-end-back"},
	}

	for _, b := range defaults {
		if err := r.Bind(b); err != nil {
			return err
		}
	}
	return nil
}

// LoadKeymap merges a JSON keymap into the registry. The document maps
// mode names to key sequences:
//
//	{
//	  "normal": {
//	    "w": {"action": "select-word-right"},
//	    "W": {"action": "select-word-right", "extend": true}
//	  }
//	}
//
// Entries replace existing bindings for the same key sequence.
func LoadKeymap(r *Registry, data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: not valid JSON", ErrKeymapParse)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return fmt.Errorf("%w: top level must be an object of modes", ErrKeymapParse)
	}

	var err error
	doc.ForEach(func(mode, entries gjson.Result) bool {
		if !entries.IsObject() {
			err = fmt.Errorf("%w: mode %q must map keys to entries", ErrKeymapParse, mode.String())
			return false
		}
		entries.ForEach(func(keys, entry gjson.Result) bool {
			action := entry.Get("action")
			if !action.Exists() {
				err = fmt.Errorf("%w: %s.%s is missing an action", ErrKeymapParse, mode.String(), keys.String())
				return false
			}
			err = r.Rebind(Binding{
				Mode:   mode.String(),
				Keys:   keys.String(),
				Action: action.String(),
				Extend: entry.Get("extend").Bool(),
			})
			return err == nil
		})
		return err == nil
	})
	return err
}

// LoadKeymapFile reads and merges a JSON keymap file. A missing file
// is not an error; the defaults stand.
func LoadKeymapFile(r *Registry, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := LoadKeymap(r, data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
