package connection

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"os"

	"github.com/TianqiuHuang/connection-config/pkg/module"
)

// ReadConnectionConfig loads the JSON file at path and extracts
// connection.type and connection.config.{hostname,database,username,pwd,port_id}.
//
// Missing keys, and nodes on the path that are not objects, leave the
// corresponding fields nil. Only an unreadable file or invalid JSON is an error.
func ReadConnectionConfig(path string) (*module.ConnectionConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer file.Close()

	data, err := ioutil.ReadAll(file)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}

	doc, err := decodeDocument(path, data)
	if err != nil {
		return nil, err
	}

	conn := object(object(doc)["connection"])
	config := object(conn["config"])

	return &module.ConnectionConfig{
		Type:     leaf(conn, "type"),
		Host:     leaf(config, "hostname"),
		Database: leaf(config, "database"),
		Username: leaf(config, "username"),
		Password: leaf(config, "pwd"),
		Port:     leaf(config, "port_id"),
	}, nil
}

// ConfigArgs is ReadConnectionConfig returning the fields as a tuple in the
// order type, host, database, username, password, port.
func ConfigArgs(path string) (dbType, host, database, username, password, port *string, err error) {
	cfg, err := ReadConnectionConfig(path)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, err
	}
	dbType, host, database, username, password, port = cfg.Values()
	return dbType, host, database, username, password, port, nil
}

func decodeDocument(path string, data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, &ParseError{Path: path, Offset: errorOffset(dec, err), Err: err}
	}

	// only whitespace may follow the document
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errTrailingData
		}
		return nil, &ParseError{Path: path, Offset: errorOffset(dec, err), Err: err}
	}

	return doc, nil
}

func errorOffset(dec *json.Decoder, err error) int64 {
	if syntaxErr, ok := err.(*json.SyntaxError); ok {
		return syntaxErr.Offset
	}
	return dec.InputOffset()
}

func object(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

func leaf(m map[string]interface{}, key string) *string {
	switch v := m[key].(type) {
	case string:
		return &v
	case json.Number:
		s := v.String()
		return &s
	default:
		return nil
	}
}
