// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/safehtml/template"
)

// A graphRef is one rendered chart image in the index.
type graphRef struct {
	Src     string // image file name, relative to the index
	Heading string
}

type indexData struct {
	MsgRate    []graphRef
	Throughput []graphRef
	Scaling    []graphRef
	Speedup    []graphRef
}

// WriteIndex writes a static index.html into dir referencing the
// generated chart images by relative path. Images are partitioned
// into the four chart families by file-name substring and listed in
// file-name order within each family; families with no images are
// omitted. It returns the path of the written index.
func WriteIndex(dir string, generated []string) (string, error) {
	names := make([]string, 0, len(generated))
	for _, path := range generated {
		names = append(names, filepath.Base(path))
	}
	sort.Strings(names)

	var data indexData
	for _, name := range names {
		switch {
		case strings.Contains(name, "msgrate_"):
			data.MsgRate = append(data.MsgRate, graphRef{
				Src:     name,
				Heading: trimName(name, "msgrate_") + " byte messages",
			})
		case strings.Contains(name, "throughput_"):
			data.Throughput = append(data.Throughput, graphRef{
				Src:     name,
				Heading: trimName(name, "throughput_") + " byte messages",
			})
		case strings.Contains(name, "msgsize_scaling"):
			data.Scaling = append(data.Scaling, graphRef{
				Src:     name,
				Heading: "Configuration: " + trimName(name, "msgsize_scaling_"),
			})
		case strings.Contains(name, "speedup_"):
			data.Speedup = append(data.Speedup, graphRef{
				Src:     name,
				Heading: trimName(name, "speedup_") + " byte messages",
			})
		}
	}

	indexFile := filepath.Join(dir, "index.html")
	f, err := os.Create(indexFile)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := indexTmpl.Execute(f, data); err != nil {
		return "", err
	}
	return indexFile, nil
}

func trimName(name, prefix string) string {
	return strings.TrimSuffix(strings.TrimPrefix(name, prefix), ".png")
}

const indexTemplate = `<!DOCTYPE html>
<html>
<head>
    <title>io_uring Benchmark Results</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 40px;
            background: #f5f5f5;
        }
        h1 { color: #333; }
        h2 {
            color: #555;
            margin-top: 40px;
            border-bottom: 2px solid #3498db;
            padding-bottom: 10px;
        }
        .graph {
            margin: 20px 0;
            background: white;
            padding: 20px;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .graph img {
            max-width: 100%;
            height: auto;
            border: 1px solid #ddd;
        }
        .graph h3 {
            margin-top: 0;
            color: #2c3e50;
        }
        .toc {
            background: white;
            padding: 20px;
            border-radius: 8px;
            margin-bottom: 30px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .toc a {
            display: block;
            padding: 5px 0;
            color: #3498db;
            text-decoration: none;
        }
        .toc a:hover {
            text-decoration: underline;
        }
    </style>
</head>
<body>
    <h1>io_uring Benchmark Results</h1>

    <div class="toc">
        <h3>Table of Contents</h3>
        <a href="#msgrate">Message Rate Comparisons</a>
        <a href="#throughput">Throughput Comparisons</a>
        <a href="#scaling">Message Size Scaling</a>
        <a href="#speedup">Speedup Analysis</a>
    </div>
{{if .MsgRate}}    <h2 id="msgrate">Message Rate Comparisons</h2>
{{range .MsgRate}}    <div class="graph">
        <h3>{{.Heading}}</h3>
        <img src="{{.Src}}" alt="{{.Src}}">
    </div>
{{end}}{{end}}{{if .Throughput}}    <h2 id="throughput">Throughput Comparisons</h2>
{{range .Throughput}}    <div class="graph">
        <h3>{{.Heading}}</h3>
        <img src="{{.Src}}" alt="{{.Src}}">
    </div>
{{end}}{{end}}{{if .Scaling}}    <h2 id="scaling">Message Size Scaling</h2>
{{range .Scaling}}    <div class="graph">
        <h3>{{.Heading}}</h3>
        <img src="{{.Src}}" alt="{{.Src}}">
    </div>
{{end}}{{end}}{{if .Speedup}}    <h2 id="speedup">Speedup Analysis (vs epoll)</h2>
{{range .Speedup}}    <div class="graph">
        <h3>{{.Heading}}</h3>
        <img src="{{.Src}}" alt="{{.Src}}">
    </div>
{{end}}{{end}}</body>
</html>
`

var indexTmpl = template.Must(template.New("index").ParseFromTrustedTemplate(template.MakeTrustedTemplate(indexTemplate)))
