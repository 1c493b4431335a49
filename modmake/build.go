package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	cryptokitVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	cryptokit := NewAppBuild("cryptokit", "cmd/cryptokit", cryptokitVersion)
	cryptokit.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", cryptokitVersion).
			CgoEnabled(false)
	})
	cryptokit.Variant("windows", "amd64")
	cryptokit.Variant("linux", "amd64")
	cryptokit.Variant("linux", "arm64")
	cryptokit.Variant("darwin", "amd64")
	cryptokit.Variant("darwin", "arm64")
	b.ImportApp(cryptokit)

	b.Execute()
}
