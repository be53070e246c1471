package main

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/vaughan0/go-ini"
)

const defaultConfigFile = "advent.ini"

// loadConfig loads the ini file at path. If path is empty, the default
// file is loaded if it exists. Each section is named by a day number and
// holds that day's parameters:
//
//	[9]
//	preamble = 25
func loadConfig(path string) (ini.File, error) {
	if path == "" {
		conf, err := ini.LoadFile(defaultConfigFile)
		if errors.Is(err, fs.ErrNotExist) {
			return make(ini.File), nil
		}
		return conf, err
	}
	return ini.LoadFile(path)
}

// A configurable solution takes parameters from its day's config section.
type configurable interface {
	configure(sec ini.Section) error
}

func configure(s solution, sec ini.Section) error {
	if len(sec) == 0 {
		return nil
	}
	c, ok := s.(configurable)
	if !ok {
		return errors.New("no parameters are accepted")
	}
	return c.configure(sec)
}

// A param decodes one config value into its destination.
type param func(v string) error

func intParam(p *int) param {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*p = n
		return nil
	}
}

func stringParam(p *string) param {
	return func(v string) error {
		*p = v
		return nil
	}
}

// intListParam decodes a comma-separated list such as "2,3".
func intListParam(p *[]int) param {
	return func(v string) error {
		var ns []int
		for _, f := range strings.Split(v, ",") {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			n, err := strconv.Atoi(f)
			if err != nil {
				return err
			}
			ns = append(ns, n)
		}
		*p = ns
		return nil
	}
}

// setParams decodes every key of sec using params. Unknown keys are an
// error so that typos don't silently fall back to defaults.
func setParams(sec ini.Section, params map[string]param) error {
	keys := make([]string, 0, len(sec))
	for k := range sec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		p, ok := params[k]
		if !ok {
			return fmt.Errorf("unknown parameter %q", k)
		}
		if err := p(sec[k]); err != nil {
			return fmt.Errorf("parameter %s: %s", k, err)
		}
	}
	return nil
}
