package models

import "reflect"

// GetSchema will get the database schema from a struct
func GetSchema(v interface{}) []string {
	var schema []string
	ty := reflect.TypeOf(v)
	if ty.Kind() == reflect.Ptr {
		ty = ty.Elem()
	}
Outer:
	for i := 0; i < ty.NumField(); i++ {
		fld := ty.Field(i)
		var tag string
		for _, t := range []string{"db", "json"} {
			tag = fld.Tag.Get(t)
			if tag == "-" {
				continue Outer
			}
			if tag != "" {
				break
			}
		}
		if tag != "" {
			schema = append(schema, tag)
		} else {
			schema = append(schema, fld.Name)
		}
	}
	return schema
}

// GetNamedSchema will return a table schema with the named columns
func GetNamedSchema(tableName string, v interface{}) []string {
	schema := GetSchema(v)
	for i := range schema {
		schema[i] = tableName + "." + schema[i]
	}
	return schema
}
