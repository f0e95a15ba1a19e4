// Command gen_engine_expects derives standalone wrapper functions from the
// with* and expect* builder methods of engineTestCase, so that test tables
// can compose them through engineTestCase.apply.
//
// Usage: go run scripts/gen_engine_expects.go -- engine_test.go engine_expects_test.go
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"sort"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

var (
	builderMethod = regexp.MustCompile(`func \(et engineTestCase\) (expect|with)(.+?)\((.+?)\) engineTestCase`)
	qualifiedType = regexp.MustCompile(`\b([a-z][a-z0-9]*)\.[A-Z]\w*`)
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) != 2 {
		log.Fatalf("usage: gen_engine_expects <input_test.go> <output_test.go>")
	}
	inName, outName := args[0], args[1]

	in, err := os.Open(inName)
	if err != nil {
		log.Fatalf("failed to open %v: %v", inName, err)
	}
	defer in.Close()

	out, err := os.Create(outName)
	if err != nil {
		log.Fatalf("failed to create %v: %v", outName, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	pr, pw := io.Pipe()

	eg.Go(func() error {
		defer out.Close()
		fmtCmd := exec.CommandContext(ctx, "goimports")
		fmtCmd.Stdin = pr
		fmtCmd.Stdout = out
		fmtCmd.Stderr = os.Stderr
		if err := fmtCmd.Run(); err != nil {
			return fmt.Errorf("goimports run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		err := generate(ctx, in, pw, args)
		pw.CloseWithError(err)
		return err
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

func generate(ctx context.Context, in *os.File, out io.Writer, args []string) error {
	var body bytes.Buffer
	imports := make(map[string]struct{})
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if match := builderMethod.FindSubmatch(sc.Bytes()); len(match) > 0 {
			writeWrapper(&body, match[1], match[2], match[3])
			for _, qual := range qualifiedType.FindAllSubmatch(match[3], -1) {
				imports[string(qual[1])] = struct{}{}
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("package main\n\n")

	buf.WriteString("// @generated from ")
	buf.WriteString(in.Name())
	buf.WriteString("\n\n")

	buf.WriteString("//go:generate go run scripts/gen_engine_expects.go --")
	for _, arg := range args {
		buf.WriteByte(' ')
		buf.WriteString(arg)
	}
	buf.WriteString("\n\n")

	// goimports resolves the path of anything not in the standard library
	names := make([]string, 0, len(imports))
	for name := range imports {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&buf, "import %q\n\n", name)
	}

	if _, err := buf.WriteTo(out); err != nil {
		return err
	}
	_, err := body.WriteTo(out)
	return err
}

// writeWrapper writes a func like expectEngineStack(values ...int32) that
// returns a function calling et.expectStack(values...).
func writeWrapper(buf *bytes.Buffer, baseName, whatName, params []byte) {
	fmt.Fprintf(buf, "func %sEngine%s(%s) func(engineTestCase) engineTestCase {\n", baseName, whatName, params)
	buf.WriteString("\treturn func(et engineTestCase) engineTestCase {\n")
	fmt.Fprintf(buf, "\t\treturn et.%s%s(", baseName, whatName)
	for i, part := range bytes.Split(params, []byte(",")) {
		if i > 0 {
			buf.WriteString(", ")
		}
		fields := bytes.Fields(part)
		buf.Write(fields[0])
		if len(fields) > 1 && bytes.HasPrefix(fields[1], []byte("...")) {
			buf.WriteString("...")
		}
	}
	buf.WriteString(")\n")
	buf.WriteString("\t}\n")
	buf.WriteString("}\n\n")
}
