package manifest

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// projectMarkerFiles identify a project-style example subtree.
var projectMarkerFiles = map[string]bool{
	"platformio.ini": true,
	"sketch.yaml":    true,
	"CMakeLists.txt": true,
}

// sourceExtensions identify custom-style example files, and double as the
// "source file" test for root leftovers.
var sourceExtensions = map[string]bool{
	".c": true, ".cpp": true, ".cc": true, ".cxx": true,
	".h": true, ".hpp": true, ".hxx": true,
	".ino": true, ".pde": true,
	".S": true, ".s": true, ".asm": true,
}

var sketchExtensions = map[string]bool{".ino": true, ".pde": true}

var whitespaceRunRe = regexp.MustCompile(`\s+`)

// WalkExamples scans <pkgDir>/examples and emits example records using the
// project/sketch/custom-style heuristics. It returns (nil, nil) if
// no examples/ directory exists.
func WalkExamples(pkgDir string) ([]Example, error) {
	examplesDir := filepath.Join(pkgDir, "examples")
	info, err := os.Lstat(examplesDir)
	if err != nil || !info.IsDir() {
		return nil, nil
	}

	entries, err := os.ReadDir(examplesDir)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	ordered := linkedhashset.New()
	byName := map[string]Example{}
	addExample := func(ex Example) {
		if _, exists := byName[ex.Name]; exists {
			return
		}
		byName[ex.Name] = ex
		ordered.Add(ex.Name)
	}

	var rootLeftovers []string
	for _, entry := range entries {
		if entry.IsDir() {
			if ex, ok, err := classifySubtree(examplesDir, entry.Name()); err != nil {
				return nil, err
			} else if ok {
				addExample(ex)
			} else if onlyContainsDirs(filepath.Join(examplesDir, entry.Name())) {
				// A grouping directory with no files of its own:
				// recurse one level deeper.
				children, err := os.ReadDir(filepath.Join(examplesDir, entry.Name()))
				if err != nil {
					return nil, err
				}
				sort.Slice(children, func(i, j int) bool { return children[i].Name() < children[j].Name() })
				for _, child := range children {
					if !child.IsDir() {
						continue
					}
					rel := entry.Name() + "/" + child.Name()
					if ex, ok, err := classifySubtree(examplesDir, rel); err != nil {
						return nil, err
					} else if ok {
						addExample(ex)
					}
				}
			}
			continue
		}
		if isSymlinkOrDotfile(entry) {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if sourceExtensions[ext] {
			rootLeftovers = append(rootLeftovers, entry.Name())
		}
	}

	if len(rootLeftovers) > 0 {
		sort.Strings(rootLeftovers)
		addExample(Example{Name: "Examples", Base: "examples", Files: rootLeftovers})
	}

	result := make([]Example, 0, ordered.Size())
	for _, name := range ordered.Values() {
		result = append(result, byName[name.(string)])
	}
	return result, nil
}

// classifySubtree applies the project/sketch/custom-style rules to
// the directory examplesDir/relPath (relPath may contain one "/" when
// called for a recursed-into grandchild).
func classifySubtree(examplesDir, relPath string) (Example, bool, error) {
	dirAbs := filepath.Join(examplesDir, relPath)
	entries, err := os.ReadDir(dirAbs)
	if err != nil {
		return Example{}, false, err
	}

	name := sanitizeExampleName(relPath)
	base := filepath.ToSlash(filepath.Join("examples", relPath))

	hasMarker := false
	for _, e := range entries {
		if !e.IsDir() && projectMarkerFiles[e.Name()] {
			hasMarker = true
			break
		}
	}
	if hasMarker {
		files, err := collectProjectFiles(dirAbs)
		if err != nil {
			return Example{}, false, err
		}
		return Example{Name: name, Base: base, Files: files}, true, nil
	}

	stem := filepath.Base(relPath)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if sketchExtensions[ext] && strings.TrimSuffix(e.Name(), ext) == stem {
			return Example{Name: name, Base: base, Files: []string{e.Name()}}, true, nil
		}
	}

	var customFiles []string
	for _, e := range entries {
		if e.IsDir() || isSymlinkOrDotfile(e) {
			continue
		}
		if sourceExtensions[filepath.Ext(e.Name())] {
			customFiles = append(customFiles, e.Name())
		}
	}
	if len(customFiles) > 0 {
		sort.Strings(customFiles)
		return Example{Name: name, Base: base, Files: customFiles}, true, nil
	}

	return Example{}, false, nil
}

// collectProjectFiles gathers a project-style example's file set: every regular,
// non-symlink, non-dotfile entry directly in dir, plus the full recursive
// contents of include/ and src/ if present, all relative to dir.
func collectProjectFiles(dir string) ([]string, error) {
	var files []string
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.IsDir() || isSymlinkOrDotfile(e) {
			continue
		}
		files = append(files, e.Name())
	}
	for _, sub := range []string{"include", "src"} {
		subPath := filepath.Join(dir, sub)
		if info, err := os.Stat(subPath); err != nil || !info.IsDir() {
			continue
		}
		err := filepath.Walk(subPath, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}
			lstat, lerr := os.Lstat(path)
			if lerr == nil && lstat.Mode()&os.ModeSymlink != 0 {
				return nil
			}
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			files = append(files, filepath.ToSlash(rel))
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

func onlyContainsDirs(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) == 0 {
		return false
	}
	for _, e := range entries {
		if !e.IsDir() {
			return false
		}
	}
	return true
}

func isSymlinkOrDotfile(e os.DirEntry) bool {
	if strings.HasPrefix(e.Name(), ".") {
		return true
	}
	return e.Type()&os.ModeSymlink != 0
}

// sanitizeExampleName turns an examples/-relative path into the example
// name used in output: "/" separators, ". " collapsed to "_", runs
// of whitespace collapsed to "_".
func sanitizeExampleName(relPath string) string {
	segments := strings.Split(filepath.ToSlash(relPath), "/")
	for i, seg := range segments {
		seg = strings.ReplaceAll(seg, ". ", "_")
		seg = whitespaceRunRe.ReplaceAllString(seg, "_")
		segments[i] = seg
	}
	return strings.Join(segments, "/")
}

// ExpandGlobExamples expands a manifest's declared glob patterns: each pattern
// is expanded against pkgDir, and matches are grouped by parent directory.
func ExpandGlobExamples(pkgDir string, patterns []string) ([]Example, error) {
	groups := map[string][]string{}
	var order []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(pkgDir, pattern))
		if err != nil {
			return nil, err
		}
		for _, abs := range matches {
			info, err := os.Stat(abs)
			if err != nil || info.IsDir() {
				continue
			}
			rel, err := filepath.Rel(pkgDir, abs)
			if err != nil {
				continue
			}
			rel = filepath.ToSlash(rel)
			dir := filepath.ToSlash(filepath.Dir(rel))
			base := filepath.Base(rel)
			if _, ok := groups[dir]; !ok {
				order = append(order, dir)
			}
			groups[dir] = append(groups[dir], base)
		}
	}

	result := make([]Example, 0, len(order))
	for _, dir := range order {
		files := groups[dir]
		sort.Strings(files)
		name := dir
		if idx := strings.Index(name, "examples/"); idx == 0 {
			name = name[len("examples/"):]
		}
		if name == "" || name == "." {
			name = "Examples"
		}
		result = append(result, Example{Name: sanitizeExampleName(name), Base: dir, Files: files})
	}
	return result, nil
}
