// Package image reads and writes bytecode image files.
//
// An image file is the raw bytecode, exactly as emitted by the assembler.
package image

import (
	"bufio"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/ezrec/corevm/vm"
)

// Load loads a bytecode image from file fileName. Returns a memory segment of
// at least minSize bytes with the image at offset zero, the number of bytes
// read from the file and any error.
func Load(fileName string, minSize int) (mem []byte, codeSize int, err error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, 0, errors.Wrap(err, "open failed")
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, 0, errors.Wrap(err, "fstat failed")
	}
	sz := st.Size()
	if sz > math.MaxUint32 {
		return nil, 0, errors.Errorf("%v: file too large", fileName)
	}

	codeSize = int(sz)
	mem = make([]byte, max(codeSize, minSize))

	n, err := io.ReadFull(bufio.NewReader(f), mem[:codeSize])
	if err != nil {
		return nil, n, errors.Wrap(err, "load failed")
	}

	return mem, codeSize, nil
}

// LoadState loads a bytecode image into a new machine state.
func LoadState(fileName string, minSize int) (state *vm.State, codeSize int, err error) {
	mem, codeSize, err := Load(fileName, minSize)
	if err != nil {
		return
	}

	state = vm.NewState(mem)
	return
}

// Save saves bytecode to an image file. The file is removed if it could not
// be completely written.
func Save(fileName string, code []byte) (err error) {
	if uint64(len(code)) > math.MaxUint32 {
		return errors.Errorf("%v bytes of code too large", len(code))
	}

	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(f)
	defer func() {
		if ferr := w.Flush(); err == nil && ferr != nil {
			err = errors.Wrap(ferr, "write failed")
		}
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close failed")
		}
		if err != nil {
			os.Remove(fileName)
		}
	}()

	if _, err = w.Write(code); err != nil {
		return errors.Wrap(err, "write failed")
	}

	return nil
}
