package cmd

import (
	"flag"

	"github.com/etnz/fincalc"
	"github.com/etnz/fincalc/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion. Run
// "COMP_INSTALL=1 fincalc" to install it.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: map[string]complete.Predictor{"v": predict.Nothing},
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = predictFlag(f)
		})
		if c.Name() == "topic" {
			topics, _ := docs.GetAllTopics()
			sub.Args = predict.Set(append(topics, "readme", "*"))
		}
		root.Sub[c.Name()] = sub
	}
	return root
}

// predictFlag suggests values for the known flags.
func predictFlag(f *flag.Flag) complete.Predictor {
	switch f.Name {
	case "a":
		return predict.Set(keyPrefixes(fincalc.Assets()))
	case "l":
		return predict.Set(keyPrefixes(fincalc.Liabilities()))
	case "map":
		return predict.Set(append(keyPrefixes(fincalc.Assets()), keyPrefixes(fincalc.Liabilities())...))
	case "from", "env":
		return predict.Files("*")
	case "preset":
		return predict.Set{"1", "2", "3", "4"}
	}
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	return predict.Something
}

func keyPrefixes[K ~string](keys []K) []string {
	res := make([]string, 0, len(keys))
	for _, k := range keys {
		res = append(res, string(k)+"=")
	}
	return res
}
