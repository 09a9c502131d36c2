package main

import (
	"errors"
	"os"

	inventorize "github.com/mattkeenan/inventorize/pkg"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errVerificationFailed) {
			inventorize.Logger().Error(err.Error())
		}
		os.Exit(1)
	}
}
