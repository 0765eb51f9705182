package dirbuild

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xrbengine/xrb/encode"
)

// Run builds the directory. Documents go to DestDir when it is set and to
// w otherwise, each preceded by a comment naming it.
func (d *Dir) Run(w io.Writer, opts ...encode.EncodeOption) ([]Doc, error) {
	docs, err := d.fetch()
	if err != nil {
		return nil, err
	}
	if err := d.patch(docs); err != nil {
		return nil, err
	}
	var bw *bufio.Writer
	if d.DestDir == "" && w != nil {
		bw = bufio.NewWriter(w)
	}
	if err := d.writeFlush(bw, docs, opts...); err != nil {
		return nil, err
	}
	return docs, nil
}

func (d *Dir) writeFlush(bw *bufio.Writer, docs []Doc, opts ...encode.EncodeOption) error {
	if err := d.write(bw, docs, opts...); err != nil {
		return err
	}
	if bw != nil {
		return bw.Flush()
	}
	return nil
}

func (d *Dir) write(bw *bufio.Writer, docs []Doc, opts ...encode.EncodeOption) error {
	if d.DestDir != "" {
		dest := d.path(d.DestDir)
		st, err := os.Stat(dest)
		if err != nil {
			if !os.IsNotExist(err) {
				return err
			}
			if err := os.MkdirAll(dest, 0755); err != nil {
				return err
			}
		} else if !st.IsDir() {
			return fmt.Errorf("%s exists but is not a directory", dest)
		}
	}
	for i := range docs {
		if err := d.writeOut(bw, &docs[i], i, opts...); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dir) writeOut(w io.Writer, doc *Doc, j int, opts ...encode.EncodeOption) error {
	if d.DestDir == "" {
		if w == nil {
			return nil
		}
		sep := ""
		if j > 0 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "%s// %s\n", sep, doc.Name); err != nil {
			return err
		}
		return encode.EncodeDocument(doc.Root, w, opts...)
	}
	fn := doc.Name
	n := d.nameCache[fn]
	d.nameCache[fn] = n + 1
	if n != 0 {
		fn += "-" + strconv.Itoa(n)
	}
	fp := filepath.Join(d.path(d.DestDir), fn+d.Suffix)
	f, err := os.OpenFile(fp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	fw := bufio.NewWriter(f)
	if err := encode.EncodeDocument(doc.Root, fw, opts...); err != nil {
		f.Close()
		return err
	}
	if err := fw.Flush(); err != nil {
		f.Close()
		return err
	}
	d.logger().Info("wrote", "file", fp)
	return f.Close()
}
