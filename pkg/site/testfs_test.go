package site

import (
	"testing/fstest"
	"time"
)

const testTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{ Title }}</title>
<link href="/index.css" rel="stylesheet">
</head>
<body>
<article>{{ Content }}</article>
</body>
</html>`

var modTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type testFileType int

const (
	static testFileType = iota
	page
	skip
)

type testFile = struct {
	mapFile *fstest.MapFile
	fType   testFileType
	output  string // expected path in the public directory
}

var testFiles = map[string]testFile{
	"site/template.html": {
		mapFile: &fstest.MapFile{Data: []byte(testTemplate), Mode: 0644},
		fType:   skip,
	},
	"site/static/index.css": {
		mapFile: &fstest.MapFile{Data: []byte("body { margin: 0; }"), Mode: 0644, ModTime: modTime},
		fType:   static,
		output:  "index.css",
	},
	"site/static/images/tolkien.png": {
		mapFile: &fstest.MapFile{Data: []byte{0x89, 'P', 'N', 'G'}, Mode: 0600, ModTime: modTime},
		fType:   static,
		output:  "images/tolkien.png",
	},
	"site/content/index.md": {
		mapFile: &fstest.MapFile{Data: []byte("# Tolkien Fan Club\n\n![JRR Tolkien sitting](/images/tolkien.png)\n\nHere's the deal, **I like Tolkien**."), Mode: 0644},
		fType:   page,
		output:  "index.html",
	},
	"site/content/blog/glorfindel/index.md": {
		mapFile: &fstest.MapFile{Data: []byte("# Why Glorfindel is More Impressive than Legolas\n\n> All that is gold does not glitter\n\n- Balrog\n- Rivendell"), Mode: 0644},
		fType:   page,
		output:  "blog/glorfindel/index.html",
	},
	"site/content/blog/notes.txt": {
		mapFile: &fstest.MapFile{Data: []byte("not markdown"), Mode: 0644},
		fType:   skip,
	},
}

func getTestFileSys() (fsys fstest.MapFS, outputs map[testFileType][]string) {
	fsys = make(fstest.MapFS)
	outputs = make(map[testFileType][]string)

	for path, testFile := range testFiles {
		fsys[path] = testFile.mapFile
		if testFile.output != "" {
			outputs[testFile.fType] = append(outputs[testFile.fType], testFile.output)
		}
	}

	return fsys, outputs
}

func testConfig(public string) Config {
	return Config{
		StaticDir:    "site/static",
		ContentDir:   "site/content",
		TemplatePath: "site/template.html",
		PublicDir:    public,
	}
}
