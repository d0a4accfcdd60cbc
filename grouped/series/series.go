// Package series 读取观测序列：空白分隔的文本，或 JSON 中按路径取出的数组。
package series

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"libstat/infra/errorx"
	"libstat/infra/errorx/errCode"

	"github.com/tidwall/gjson"
)

// ReadText 按空白切分，逐个解析为 float64
func ReadText(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	out := make([]float64, 0, 64)
	for scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("parse value %d: %w", len(out), err)
		}
		out = append(out, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return out, nil
}

// ReadJSON path 为 gjson 路径，空串表示整个文档；结果必须是数值数组
func ReadJSON(data []byte, path string) ([]float64, error) {
	if !gjson.ValidBytes(data) {
		return nil, errorx.New(errCode.INVALID_VALUE, "invalid json")
	}
	var res gjson.Result
	if path == "" {
		res = gjson.ParseBytes(data)
	} else {
		res = gjson.GetBytes(data, path)
	}
	if !res.Exists() {
		return nil, errorx.Newf(errCode.EMPTY_VALUE, "json path %q not found", path)
	}
	if !res.IsArray() {
		return nil, errorx.Newf(errCode.INVALID_VALUE, "json path %q is not an array", path)
	}

	items := res.Array()
	out := make([]float64, 0, len(items))
	for i, item := range items {
		if item.Type != gjson.Number {
			return nil, errorx.Newf(errCode.INVALID_VALUE, "element %d is not a number: %s", i, item.Raw)
		}
		out = append(out, item.Float())
	}
	return out, nil
}

// ReadFile .json 文件走 ReadJSON，其余按文本读取
func ReadFile(path, jsonPath string) ([]float64, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read json: %w", err)
		}
		return ReadJSON(b, jsonPath)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open series: %w", err)
	}
	defer f.Close()
	return ReadText(f)
}
