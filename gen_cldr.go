//go:build ignore

package main

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const BasePath = "cldr/"
const BaseURL = "https://raw.githubusercontent.com/unicode-org/cldr/main/common/"
const OutPath = "testdata/"

var LocaleNames = []string{
	"en",
	"de",
	"ar_QA",
}

var calendarPath = "ldml/dates/calendars/calendar[type=gregorian]/"

// node is a nested document as read by Bundle.Add.
type node map[string]any

func (n node) set(value string, keys ...string) {
	for _, key := range keys[:len(keys)-1] {
		child, ok := n[key].(node)
		if !ok {
			child = node{}
			n[key] = child
		}
		n = child
	}
	n[keys[len(keys)-1]] = value
}

func main() {
	weekData := node{}
	err := readXMLLeafs("supplemental/supplementalData.xml", func(tags []string, attrs []map[string]string, content string) {
		if isTag(tags, attrs, "supplementalData/weekData/firstDay[day]") {
			attr := attrs[len(attrs)-1]
			if attr["alt"] != "" {
				return
			}
			for _, territory := range strings.Fields(attr["territories"]) {
				weekData.set(attr["day"], "firstDay", territory)
			}
		}
	})
	if err != nil {
		panic(err)
	}

	for _, localeName := range LocaleNames {
		tag := language.MustParse(localeName)
		name := tag.String()

		// inherit the parent's data, most specific last
		chain := []string{}
		for t := tag; !t.IsRoot(); t = t.Parent() {
			chain = append([]string{strings.ReplaceAll(t.String(), "-", "_")}, chain...)
		}

		doc := node{}
		for _, filename := range chain {
			if err := readLocale(doc, filename); err != nil {
				panic(err)
			}
		}
		doc.set(tag.String(), "identity", "language")

		if err := writeDocument(OutPath+name+".yaml", node{"main": node{name: doc}, "weekData": weekData}); err != nil {
			panic(err)
		}
	}
}

func readLocale(doc node, localeName string) error {
	numberSystem := "latn"
	if numbers, ok := doc["numbers"].(node); ok {
		if s, ok := numbers["defaultNumberingSystem"].(string); ok {
			numberSystem = s
		}
	}
	return readXMLLeafs("main/"+localeName+".xml", func(tags []string, attrs []map[string]string, content string) {
		if content == "↑↑↑" {
			return
		}
		last := attrs[len(attrs)-1]
		if isTag(tags, attrs, "ldml/numbers/defaultNumberingSystem") && last["alt"] == "" {
			numberSystem = content
			doc.set(content, "numbers", "defaultNumberingSystem")
		} else if isTag(tags, attrs, "ldml/numbers/symbols[numberSystem]/*") {
			if attrs[len(attrs)-2]["numberSystem"] == numberSystem && last["alt"] == "" {
				doc.set(content, "numbers", "symbols-numberSystem-"+numberSystem, tags[len(tags)-1])
			}
		} else if isTag(tags, attrs, "ldml/numbers/decimalFormats[numberSystem]/decimalFormatLength[!type]/decimalFormat/pattern") {
			doc.set(content, "numbers", "decimalFormats-numberSystem-"+attrs[2]["numberSystem"], "standard")
		} else if isTag(tags, attrs, "ldml/numbers/percentFormats[numberSystem]/percentFormatLength[!type]/percentFormat/pattern") {
			doc.set(content, "numbers", "percentFormats-numberSystem-"+attrs[2]["numberSystem"], "standard")
		} else if isTag(tags, attrs, "ldml/numbers/scientificFormats[numberSystem]/scientificFormatLength[!type]/scientificFormat/pattern") {
			doc.set(content, "numbers", "scientificFormats-numberSystem-"+attrs[2]["numberSystem"], "standard")
		} else if isTag(tags, attrs, "ldml/numbers/currencyFormats[numberSystem]/currencyFormatLength[!type]/currencyFormat[type]/pattern") {
			if last["alt"] == "" {
				doc.set(content, "numbers", "currencyFormats-numberSystem-"+attrs[2]["numberSystem"], attrs[len(attrs)-2]["type"])
			}
		} else if isTag(tags, attrs, "ldml/numbers/currencies/currency[type]/*") {
			code := attrs[len(attrs)-2]["type"]
			switch field := tags[len(tags)-1]; {
			case field == "displayName" && last["count"] == "":
				doc.set(content, "numbers", "currencies", code, "displayName")
			case field == "symbol" && last["alt"] == "":
				doc.set(content, "numbers", "currencies", code, "symbol")
			case field == "symbol" && last["alt"] == "narrow":
				doc.set(content, "numbers", "currencies", code, "symbol-alt-narrow")
			}
		} else if isTag(tags, attrs, calendarPath+"months/monthContext[type]/monthWidth[type]/month[type]") {
			if last["yeartype"] == "" {
				doc.set(content, "dates", "calendars", "gregorian", "months", attrs[len(attrs)-3]["type"], attrs[len(attrs)-2]["type"], last["type"])
			}
		} else if isTag(tags, attrs, calendarPath+"days/dayContext[type]/dayWidth[type]/day[type]") {
			doc.set(content, "dates", "calendars", "gregorian", "days", attrs[len(attrs)-3]["type"], attrs[len(attrs)-2]["type"], last["type"])
		} else if isTag(tags, attrs, calendarPath+"dayPeriods/dayPeriodContext[type]/dayPeriodWidth[type]/dayPeriod[type]") {
			if last["alt"] == "" {
				doc.set(content, "dates", "calendars", "gregorian", "dayPeriods", attrs[len(attrs)-3]["type"], attrs[len(attrs)-2]["type"], last["type"])
			}
		} else if isTag(tags, attrs, calendarPath+"eras/*") && len(tags) == 7 {
			key := last["type"]
			if alt := last["alt"]; alt != "" {
				key += "-alt-" + alt
			}
			doc.set(content, "dates", "calendars", "gregorian", "eras", tags[len(tags)-2], key)
		} else if isTag(tags, attrs, calendarPath+"dateFormats/dateFormatLength[type]/dateFormat/pattern") {
			if last["alt"] == "" {
				doc.set(content, "dates", "calendars", "gregorian", "dateFormats", attrs[len(attrs)-3]["type"])
			}
		} else if isTag(tags, attrs, calendarPath+"timeFormats/timeFormatLength[type]/timeFormat/pattern") {
			if last["alt"] == "" {
				doc.set(content, "dates", "calendars", "gregorian", "timeFormats", attrs[len(attrs)-3]["type"])
			}
		} else if isTag(tags, attrs, calendarPath+"dateTimeFormats/dateTimeFormatLength[type]/dateTimeFormat[!type]/pattern") {
			doc.set(content, "dates", "calendars", "gregorian", "dateTimeFormats", attrs[len(attrs)-3]["type"])
		} else if isTag(tags, attrs, calendarPath+"dateTimeFormats/availableFormats/dateFormatItem[id]") {
			if last["count"] == "" && last["alt"] == "" {
				doc.set(content, "dates", "calendars", "gregorian", "dateTimeFormats", "availableFormats", last["id"])
			}
		} else if isTag(tags, attrs, "ldml/localeDisplayNames/territories/territory[type]") {
			if last["alt"] == "" {
				doc.set(content, "localeDisplayNames", "territories", last["type"])
			}
		} else if isTag(tags, attrs, "ldml/dates/timeZoneNames/*") && len(tags) == 4 {
			switch field := tags[len(tags)-1]; field {
			case "hourFormat", "gmtFormat", "gmtZeroFormat":
				doc.set(content, "dates", "timeZoneNames", field)
			}
		}
	})
}

// writeDocument writes doc as YAML with the symbols of each calendar width on a single line.
func writeDocument(filename string, doc node) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toYAML(doc, 0)); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return w.Flush()
}

// toYAML converts a node into a YAML tree, leaf maps at the depth of calendar widths use flow style.
func toYAML(n node, depth int) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	leafs := true
	for _, key := range sortedKeys(n) {
		k := &yaml.Node{Kind: yaml.ScalarNode, Value: key}
		var v *yaml.Node
		switch val := n[key].(type) {
		case node:
			leafs = false
			v = toYAML(val, depth+1)
		case string:
			v = &yaml.Node{Kind: yaml.ScalarNode, Value: val, Style: yaml.DoubleQuotedStyle}
		default:
			v = &yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprint(val)}
		}
		m.Content = append(m.Content, k, v)
	}
	if leafs && 6 < depth {
		m.Style = yaml.FlowStyle
	}
	return m
}

func sortedKeys(n node) []string {
	keys := make([]string, 0, len(n))
	for key := range n {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func readXMLLeafs(filename string, cb func([]string, []map[string]string, string)) error {
	if _, err := os.Stat(BasePath + filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	} else if err != nil {
		if err := os.MkdirAll(filepath.Dir(BasePath+filename), 0755); err != nil {
			return err
		}
		f, err := os.Create(BasePath + filename)
		if err != nil {
			return err
		}
		defer f.Close()

		resp, err := http.Get(BaseURL + filename)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%v: %v", filename, resp.Status)
		}
		if _, err := io.Copy(f, resp.Body); err != nil {
			return err
		}
	}

	f, err := os.Open(BasePath + filename)
	if err != nil {
		return err
	}
	defer f.Close()

	state := 0
	tags := []string{}
	attrs := []map[string]string{}
	content := ""
	decoder := xml.NewDecoder(f)
	for {
		t, err := decoder.Token()
		if err != nil {
			if err != io.EOF {
				return err
			}
			return nil
		}

		if elem, ok := t.(xml.StartElement); ok {
			tags = append(tags, elem.Name.Local)
			attr := map[string]string{}
			for _, a := range elem.Attr {
				attr[a.Name.Local] = a.Value
			}
			attrs = append(attrs, attr)
			content = ""
			state = 1
		} else if char, ok := t.(xml.CharData); ok && state == 1 {
			content = string(char)
		} else if _, ok = t.(xml.EndElement); ok {
			if state == 1 {
				cb(tags, attrs, content)
			}
			attrs = attrs[:len(attrs)-1]
			tags = tags[:len(tags)-1]
			state = 0
		} else {
			state = 0
		}
	}
}

// isTag matches a leaf path against a selector such as "a/b[type=x]/c[!alt]/*".
func isTag(tags []string, attrs []map[string]string, s string) bool {
	elems := strings.Split(s, "/")
	if len(tags) < len(elems) || elems[len(elems)-1] != "*" && len(tags) != len(elems) {
		return false
	}
	for i, elem := range elems {
		if elem == "*" {
			return true
		}

		idx := strings.IndexByte(elem, '[')
		if idx == -1 {
			idx = len(elem)
		}

		tag := elem[:idx]
		if tag != tags[i] {
			return false
		}
		for idx < len(elem) {
			if elem[idx] != '[' {
				panic("wrong tag attr syntax")
			}
			end := strings.IndexByte(elem[idx+1:], ']')
			if end == -1 {
				panic("wrong tag attr syntax")
			}
			is := strings.IndexByte(elem[idx+1:idx+1+end], '=')
			if is == -1 {
				is = end
			}

			key := elem[idx+1 : idx+1+is]
			if key[0] == '!' {
				if _, ok := attrs[i][key[1:]]; ok {
					return false
				}
			} else if attrVal, ok := attrs[i][key]; !ok {
				return false
			} else if is != end {
				val := elem[idx+1+is+1 : idx+1+end]
				if val != attrVal {
					return false
				}
			}
			idx += 1 + end + 1
		}
	}
	return true
}
