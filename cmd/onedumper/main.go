// Command onedumper dumps the structured contents of a legacy OneNote
// (.one/.onetoc2) file as JSON: a root command, a "dump" subcommand with
// one flag per category of thing this module knows how to interpret,
// and a "version" subcommand.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/onenote-go/onenote/fsshttpb"
	"github.com/onenote-go/onenote/onestore"
	"github.com/onenote-go/onenote/propset"
)

const version = "0.1.0"

var (
	wantSection bool
	wantToc     bool
	wantPage    bool
	wantAll     bool
	strict      bool
)

func prettyPrint(v interface{}) string {
	buf, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("<marshal error: %v>", err)
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buf, "", "\t"); err != nil {
		return string(buf)
	}
	return pretty.String()
}

func dumpFile(path string) {
	log.Printf("processing %s", path)

	pkg, err := onestore.Open(path, onestore.Options{Strict: strict})
	if err != nil {
		log.Printf("error opening %s: %v", path, err)
		return
	}
	defer pkg.Close()

	if err := pkg.Parse(); err != nil {
		log.Printf("error parsing %s: %v", path, err)
		return
	}

	space, err := pkg.RootObjectSpace()
	if err != nil {
		log.Printf("error assembling root object space for %s: %v", path, err)
		return
	}

	for id, obj := range space.Objects {
		dumpObject(id, obj)
	}
}

func dumpObject(id fsshttpb.ExGUID, obj *onestore.Object) {
	switch obj.JcID {
	case propset.JcIDSectionNode:
		if !wantSection && !wantAll {
			return
		}
		section, err := propset.ParseSection(obj)
		if err != nil {
			log.Printf("%v: section parse failed: %v", id, err)
			return
		}
		fmt.Println(prettyPrint(section))

	case propset.JcIDTocContainer:
		if !wantToc && !wantAll {
			return
		}
		toc, err := propset.ParseTocContainer(obj)
		if err != nil {
			log.Printf("%v: toc container parse failed: %v", id, err)
			return
		}
		fmt.Println(prettyPrint(toc))

	case propset.JcIDTocSection:
		if !wantToc && !wantAll {
			return
		}
		tocSection, err := propset.ParseTocSection(obj)
		if err != nil {
			log.Printf("%v: toc section parse failed: %v", id, err)
			return
		}
		fmt.Println(prettyPrint(tocSection))

	case propset.JcIDPageNode:
		if !wantPage && !wantAll {
			return
		}
		page, err := propset.ParsePage(obj)
		if err != nil {
			log.Printf("%v: page parse failed: %v", id, err)
			return
		}
		fmt.Println(prettyPrint(page))

	case propset.JcIDPageManifestNode:
		if !wantPage && !wantAll {
			return
		}
		manifest, err := propset.ParsePageManifest(obj)
		if err != nil {
			log.Printf("%v: page manifest parse failed: %v", id, err)
			return
		}
		fmt.Println(prettyPrint(manifest))
	}
}

func dump(cmd *cobra.Command, args []string) {
	for _, path := range args {
		info, err := os.Stat(path)
		if err != nil {
			log.Printf("error reading %s: %v", path, err)
			continue
		}
		if !info.IsDir() {
			dumpFile(path)
			continue
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			log.Printf("error reading directory %s: %v", path, err)
			continue
		}
		for _, e := range entries {
			if !e.IsDir() {
				dumpFile(path + string(os.PathSeparator) + e.Name())
			}
		}
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "onedumper",
		Short: "A legacy OneNote (.one/.onetoc2) file parser",
		Long:  "Dumps the structured contents of legacy OneNote files, built for offline analysis and forensics.",
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("onedumper version %s\n", version)
		},
	}

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump the contents of one or more OneNote files",
		Args:  cobra.MinimumNArgs(1),
		Run:   dump,
	}
	dumpCmd.Flags().BoolVar(&wantSection, "section", false, "dump section nodes")
	dumpCmd.Flags().BoolVar(&wantToc, "toc", false, "dump table-of-contents nodes")
	dumpCmd.Flags().BoolVar(&wantPage, "page", false, "dump page and page-manifest nodes")
	dumpCmd.Flags().BoolVar(&wantAll, "all", false, "dump every recognized object")
	dumpCmd.Flags().BoolVar(&strict, "strict", false, "abort on an unrecognized data element type instead of skipping it")

	rootCmd.AddCommand(versionCmd, dumpCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
