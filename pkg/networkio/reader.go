package networkio

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/mcmetro/pkg/util"
	"gopkg.in/yaml.v3"
)

// openFile opens path, transparently decompressing files ending in .bz2.
func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, util.WrapErrorf(err, util.ErrNotFound, "network file %s", path)
		}
		return nil, err
	}
	if !strings.HasSuffix(path, ".bz2") {
		return f, nil
	}

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &bzipFile{Reader: bz, f: f}, nil
}

type bzipFile struct {
	*bzip2.Reader
	f *os.File
}

func (b *bzipFile) Close() error {
	err := b.Reader.Close()
	if cerr := b.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// LoadNetwork reads a yaml (or json) network file, optionally bzip2 compressed.
func LoadNetwork(path string) (*Network, error) {
	r, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return ReadNetwork(r)
}

func ReadNetwork(r io.Reader) (*Network, error) {
	var rec networkRecord
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rec); err != nil && !errors.Is(err, io.EOF) {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "decode network file")
	}

	if err := util.ValidateStruct(rec); err != nil {
		return nil, err
	}
	return newNetwork(rec), nil
}

// LoadPassengerNames reads one passenger name per line. Blank lines are skipped.
func LoadPassengerNames(path string) ([]string, error) {
	r, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	names := make([]string, 0)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return names, nil
}
