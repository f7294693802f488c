package wal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
)

// 自己定義常用的權限常量
const (
	// rw-r--r-- (擁有者讀寫，其他人唯讀)
	FileModeDefault fs.FileMode = 0644

	// rw------- (只有擁有者可讀寫) - 帳務資料預設使用
	FileModePrivate fs.FileMode = 0600
)

// ErrClosed WAL 已關閉
var ErrClosed = errors.New("wal: closed")

// file 為 *os.File 上 WAL 用到的部分
type file interface {
	io.ReadWriteSeeker
	Truncate(size int64) error
	Sync() error
	Close() error
}

// WAL 以 JSON Lines 格式追加寫入的 Write-Ahead Log
type WAL struct {
	file   file
	mu     sync.Mutex
	size   int64 // 已確認落地的位元組數
	closed bool
}

// NewWAL 開啟或建立一個 WAL 檔案
// O_RDWR 讀寫模式
// O_APPEND 每次寫入時自動跳到文件末尾
// O_CREATE 如果文件不存在則建立
func NewWAL(path string) (*WAL, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, FileModePrivate)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &WAL{file: f, size: info.Size()}, nil
}

// Write 寫入一筆資料並刷入硬碟，回傳 nil 代表資料已落地
// 寫入或 Sync 失敗時截回寫入前的長度，失敗的紀錄不會在重播時出現
func (w *WAL) Write(v any) error {
	line, err := json.Marshal(v)
	if err != nil {
		return err
	}
	line = append(line, '\n')

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	if _, err := w.file.Write(line); err != nil {
		return w.rollback(err)
	}
	if err := w.file.Sync(); err != nil {
		return w.rollback(err)
	}
	w.size += int64(len(line))
	return nil
}

func (w *WAL) rollback(cause error) error {
	if err := w.file.Truncate(w.size); err != nil {
		return fmt.Errorf("%w (rollback to %d bytes failed: %v)", cause, w.size, err)
	}
	_ = w.file.Sync()
	return cause
}

// Sync 強制刷入硬碟
func (w *WAL) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	return w.file.Sync()
}

// Close 關閉檔案，重複呼叫不會出錯
func (w *WAL) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}

// ReadAll 從頭依序讀取所有資料
// callback 逐筆接收原始 JSON，避免一次將所有資料載入記憶體
// 檔尾若有寫到一半的紀錄 (crash 造成)，截斷到最後一筆完整紀錄之後，之後的寫入接在它後面
func (w *WAL) ReadAll(callback func(jsonRaw []byte) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}

	// 確保從頭讀取
	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return err
	}

	decoder := json.NewDecoder(w.file)
	var good int64
	for {
		var raw json.RawMessage
		err := decoder.Decode(&raw)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return w.truncateTail(good)
		}
		if err != nil {
			return err
		}
		good = decoder.InputOffset()
		if err := callback(raw); err != nil {
			return err
		}
	}
}

// truncateTail 丟掉 offset 之後的殘缺資料並補回換行
func (w *WAL) truncateTail(offset int64) error {
	if err := w.file.Truncate(offset); err != nil {
		return fmt.Errorf("wal: truncate torn tail at %d: %w", offset, err)
	}
	w.size = offset
	if offset > 0 {
		if _, err := w.file.Write([]byte{'\n'}); err != nil {
			return fmt.Errorf("wal: truncate torn tail at %d: %w", offset, err)
		}
		w.size++
	}
	return w.file.Sync()
}
