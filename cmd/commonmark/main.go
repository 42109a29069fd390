// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Command commonmark renders a CommonMark document as HTML,
// or reformats it back to canonical CommonMark with the -fmt flag.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/skyhook-md/commonmark"
	"github.com/skyhook-md/commonmark/format"
)

func main() {
	fmtFlag := flag.Bool("fmt", false, "reformat the input as canonical CommonMark instead of rendering HTML")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-fmt] [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*fmtFlag, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "commonmark:", err)
		os.Exit(1)
	}
}

func run(reformat bool, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("too many arguments")
	}

	r, err := openInput(args)
	if err != nil {
		return err
	}
	defer r.Close()

	source, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	blocks, refMap := commonmark.Parse(source)

	out := bufio.NewWriter(os.Stdout)
	if reformat {
		if err := format.Format(out, blocks); err != nil {
			return fmt.Errorf("format: %w", err)
		}
	} else {
		if err := commonmark.RenderHTML(out, blocks, refMap); err != nil {
			return fmt.Errorf("render html: %w", err)
		}
	}
	return out.Flush()
}

func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", args[0], err)
	}
	return f, nil
}
