package source

import (
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// Expand resolves shell style glob patterns in args against fs. Arguments
// without matches, invalid patterns and URLs are kept as given.
func Expand(fs afero.Fs, args []string) []string {
	var names []string
	for _, arg := range args {
		if IsRemote(arg) {
			names = append(names, arg)
			continue
		}

		matches, err := afero.Glob(fs, arg)
		if err != nil || len(matches) == 0 {
			names = append(names, arg)
			continue
		}
		names = append(names, matches...)
	}
	return lo.Uniq(names)
}
