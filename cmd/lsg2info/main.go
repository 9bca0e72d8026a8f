// Command lsg2info prints a summary of one or more .lsg2 containers: the
// header/context/segment-table view, or the per-segment tags, or the
// aggregated profile, depending on the flags given. It is a thin
// demonstration consumer of the public API and contains no codec logic
// of its own.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/mewkiz/lsg2"
)

var (
	tagsFlag    = flag.Bool("tags", false, "print export_tags instead of read_info")
	profileFlag = flag.Bool("profile", false, "print export_profile instead of read_info")
)

func main() {
	flag.Parse()
	for _, filePath := range flag.Args() {
		if err := inspect(filePath); err != nil {
			log.Println(err)
		}
	}
}

func inspect(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	switch {
	case *tagsFlag:
		tags, err := lsg2.ExportTags(data)
		if err != nil {
			return err
		}
		return enc.Encode(tags)
	case *profileFlag:
		profile, err := lsg2.ExportProfile(data)
		if err != nil {
			return err
		}
		return enc.Encode(profile)
	default:
		info, err := lsg2.ReadInfo(data)
		if err != nil {
			return err
		}
		return enc.Encode(info)
	}
}
