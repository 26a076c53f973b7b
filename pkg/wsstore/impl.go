/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package wsstore

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/valyala/bytebufferpool"
	bolt "go.etcd.io/bbolt"

	"github.com/voedger/idfspace/pkg/goutils/logger"
	"github.com/voedger/idfspace/pkg/idd"
	"github.com/voedger/idfspace/pkg/workspace"
)

type store struct {
	db  *bolt.DB
	now func() time.Time
}

func initDB(db *bolt.DB) error {
	return db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{textBucketName, infoBucketName} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
}

func buckets(tx *bolt.Tx) (text, info *bolt.Bucket, err error) {
	text = tx.Bucket([]byte(textBucketName))
	info = tx.Bucket([]byte(infoBucketName))
	if text == nil || info == nil {
		return nil, nil, ErrBucketNotFound
	}
	return text, info, nil
}

func (s *store) Put(name string, ws *workspace.Workspace) (Info, error) {
	if name == "" {
		return Info{}, ErrEmptyName
	}
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	if err := ws.Print(bb); err != nil {
		return Info{}, err
	}

	info := Info{
		Name:       name,
		SavedAt:    s.now().UTC(),
		NumObjects: ws.NumObjects(),
		Version:    ws.Version(),
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		text, infos, err := buckets(tx)
		if err != nil {
			return err
		}
		if err := text.Put([]byte(name), bb.B); err != nil {
			return err
		}
		return infos.Put([]byte(name), encodeInfo(info))
	})
	if err != nil {
		return Info{}, err
	}
	if logger.IsVerbose() {
		logger.Verbose("snapshot «"+name+"» saved,", info.NumObjects, "records")
	}
	return info, nil
}

func (s *store) Text(name string) (res []byte, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		text, _, err := buckets(tx)
		if err != nil {
			return err
		}
		v := text.Get([]byte(name))
		if v == nil {
			return fmt.Errorf("%w: «%s»", ErrSnapshotNotFound, name)
		}
		// bolt values are valid only inside transaction
		res = bytes.Clone(v)
		return nil
	})
	return res, err
}

func (s *store) Get(name string, schema idd.ISchema, opts ...workspace.Option) (*workspace.Workspace, error) {
	text, err := s.Text(name)
	if err != nil {
		return nil, err
	}
	ws, err := workspace.Load(bytes.NewReader(text), schema, opts...)
	if err != nil {
		return nil, fmt.Errorf("snapshot «%s»: %w", name, err)
	}
	return ws, nil
}

func (s *store) List() (res []Info, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		_, infos, err := buckets(tx)
		if err != nil {
			return err
		}
		// keys are iterated in byte order
		return infos.ForEach(func(k, v []byte) error {
			info, err := decodeInfo(string(k), v)
			if err != nil {
				return err
			}
			res = append(res, info)
			return nil
		})
	})
	return res, err
}

func (s *store) Delete(name string) (deleted bool, err error) {
	err = s.db.Update(func(tx *bolt.Tx) error {
		text, infos, err := buckets(tx)
		if err != nil {
			return err
		}
		if text.Get([]byte(name)) == nil {
			return nil
		}
		deleted = true
		if err := text.Delete([]byte(name)); err != nil {
			return err
		}
		return infos.Delete([]byte(name))
	})
	return deleted, err
}

func (s *store) Close() error {
	return s.db.Close()
}

func encodeInfo(info Info) []byte {
	b := make([]byte, infoHeaderSize, infoHeaderSize+len(info.Version))
	binary.BigEndian.PutUint64(b, uint64(info.SavedAt.UnixNano()))
	binary.BigEndian.PutUint32(b[8:], uint32(info.NumObjects))
	return append(b, info.Version...)
}

func decodeInfo(name string, b []byte) (Info, error) {
	if len(b) < infoHeaderSize {
		return Info{}, fmt.Errorf("%w: «%s»", ErrCorruptedInfo, name)
	}
	return Info{
		Name:       name,
		SavedAt:    time.Unix(0, int64(binary.BigEndian.Uint64(b))).UTC(),
		NumObjects: int(binary.BigEndian.Uint32(b[8:])),
		Version:    string(b[infoHeaderSize:]),
	}, nil
}
