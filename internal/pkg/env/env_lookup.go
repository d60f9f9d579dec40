package env

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/subosito/gotenv"
)

func TrySetFromEnv(envName string, val *string) {
	if envVal, found := os.LookupEnv(envName); found {
		*val = envVal
	}
}

func TrySetBoolFromEnv(envName string, val *bool) error {
	envVal, found := os.LookupEnv(envName)
	if !found {
		return nil
	}

	parsed, err := strconv.ParseBool(envVal)
	if err != nil {
		return err
	}

	*val = parsed
	return nil
}

func TrySetDurationFromEnv(envName string, val *time.Duration) error {
	envVal, found := os.LookupEnv(envName)
	if !found {
		return nil
	}

	parsed, err := time.ParseDuration(envVal)
	if err != nil {
		return err
	}

	*val = parsed
	return nil
}

// LoadDotEnv loads variables from the given files without overriding the ones
// already set. Missing files are ignored.
func LoadDotEnv(filenames ...string) error {
	for _, filename := range filenames {
		err := gotenv.Load(filename)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	return nil
}
