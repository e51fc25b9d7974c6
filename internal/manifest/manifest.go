package manifest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jammission/jamsetup/internal/filesystem"
)

// Requirement is a single package line of a pip requirements file.
type Requirement struct {
	// Name is the declared project name as written
	Name string
	// Extras lists any extras requested in brackets, e.g. "argon2"
	Extras []string
	// Constraint is the version specifier or direct reference, e.g.
	// ">=4.2,<5.0" or "@ https://..."; empty means any version
	Constraint string
	// Marker is the environment marker after ';', e.g. `sys_platform == "linux"`
	Marker string
	// Line is the 1-based line number in the manifest
	Line int
}

// Option is a non-package line forwarded to pip verbatim: -r includes,
// -e editable installs, --index-url and friends.
type Option struct {
	Raw  string
	Line int
}

// Manifest is a parsed dependency manifest (requirements.txt).
type Manifest struct {
	Path         string
	Requirements []Requirement
	Options      []Option
}

// requirementPattern matches "name[extras] rest" where rest holds the
// version specifier and is validated loosely; pip itself is the authority.
var requirementPattern = regexp.MustCompile(`^([A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?)\s*(\[[^\]]*\])?\s*(.*)$`)

// Load reads and parses the manifest at path.
func Load(fsys filesystem.FileSystem, path string) (*Manifest, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return Parse(path, data)
}

// Parse parses manifest data. Comments and blank lines are dropped,
// backslash continuations are joined, option lines are kept verbatim.
func Parse(path string, data []byte) (*Manifest, error) {
	m := &Manifest{Path: path}

	lines := strings.Split(string(data), "\n")
	for i := 0; i < len(lines); i++ {
		lineNo := i + 1
		line := lines[i]

		// Join backslash continuations onto one logical line
		for strings.HasSuffix(strings.TrimRight(line, " \t"), `\`) && i+1 < len(lines) {
			line = strings.TrimSuffix(strings.TrimRight(line, " \t"), `\`)
			line = strings.TrimRight(line, " \t")
			i++
			line += " " + strings.TrimSpace(lines[i])
		}

		line = stripComment(line)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "-") {
			m.Options = append(m.Options, Option{Raw: line, Line: lineNo})
			continue
		}

		req, err := parseRequirement(line, lineNo)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		m.Requirements = append(m.Requirements, req)
	}

	return m, nil
}

func parseRequirement(line string, lineNo int) (Requirement, error) {
	groups := requirementPattern.FindStringSubmatch(line)
	if groups == nil || groups[1] == "" {
		return Requirement{}, fmt.Errorf("cannot parse requirement %q", line)
	}

	req := Requirement{
		Name: groups[1],
		Line: lineNo,
	}

	if groups[2] != "" {
		extras := strings.Trim(groups[2], "[]")
		for _, extra := range strings.Split(extras, ",") {
			if extra = strings.TrimSpace(extra); extra != "" {
				req.Extras = append(req.Extras, extra)
			}
		}
	}

	rest := groups[3]
	if idx := strings.Index(rest, ";"); idx >= 0 {
		req.Marker = strings.TrimSpace(rest[idx+1:])
		rest = rest[:idx]
	}
	req.Constraint = strings.TrimSpace(rest)

	return req, nil
}

// stripComment removes a full-line or trailing comment. pip only treats
// '#' as a comment at line start or after whitespace.
func stripComment(line string) string {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "#") {
		return ""
	}

	for idx := 0; idx < len(line); idx++ {
		if line[idx] != '#' {
			continue
		}
		if idx > 0 && (line[idx-1] == ' ' || line[idx-1] == '\t') {
			return line[:idx]
		}
	}
	return line
}

// NormalizeName canonicalizes a package name per PEP 503: lowercase, with
// runs of '-', '_' and '.' collapsed to a single '-'.
func NormalizeName(name string) string {
	var b strings.Builder
	lastSep := false
	for _, r := range strings.ToLower(name) {
		if r == '-' || r == '_' || r == '.' {
			if !lastSep {
				b.WriteByte('-')
			}
			lastSep = true
			continue
		}
		lastSep = false
		b.WriteRune(r)
	}
	return b.String()
}

// Duplicates returns the canonical names declared more than once, in first
// occurrence order.
func (m *Manifest) Duplicates() []string {
	seen := make(map[string]int)
	var dups []string
	for _, req := range m.Requirements {
		name := NormalizeName(req.Name)
		seen[name]++
		if seen[name] == 2 {
			dups = append(dups, name)
		}
	}
	return dups
}
