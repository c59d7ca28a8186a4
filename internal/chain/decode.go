package chain

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
)

var log = logrus.WithField("package", "chain")

// ErrUnexpectedShape is returned when value can't be decoded into entity.
var ErrUnexpectedShape = errors.New("unexpected shape")

// Shape tells how a record was encoded by the binding.
type Shape uint8

const (
	// Unknown ...
	Unknown Shape = iota
	// Positional is an ordered list of fields (multi-output call or untagged tuple).
	Positional
	// Keyed is a record with named fields (ABI struct or decoded JSON object).
	Keyed
)

// Value is a record classified by its shape.
type Value struct {
	Shape Shape

	fields []interface{}
	keyed  map[string]interface{}
}

// Field returns field by position for Positional values and by one of names for Keyed values.
func (v Value) Field(i int, names ...string) (interface{}, bool) {
	switch v.Shape {
	case Positional:
		if i < 0 || i >= len(v.fields) {
			return nil, false
		}
		return v.fields[i], true
	case Keyed:
		for _, n := range names {
			if f, ok := v.keyed[strings.ToLower(n)]; ok {
				return f, true
			}
		}
	}

	return nil, false
}

// Len returns number of fields.
func (v Value) Len() int {
	if v.Shape == Positional {
		return len(v.fields)
	}
	return len(v.keyed)
}

// Unwrap turns call outputs into a single value: a lone output is returned as is, many outputs as positional list.
func Unwrap(out []interface{}) interface{} {
	if len(out) == 1 {
		return out[0]
	}
	return out
}

// Classify determines shape of value.
func Classify(raw interface{}) (Value, error) {
	if raw == nil {
		return Value{}, fmt.Errorf("%w: nil", ErrUnexpectedShape)
	}

	switch v := raw.(type) {
	case []interface{}:
		return Value{Shape: Positional, fields: v}, nil
	case map[string]interface{}:
		m := make(map[string]interface{}, len(v))
		for k, f := range v {
			m[strings.ToLower(k)] = f
		}
		return Value{Shape: Keyed, keyed: m}, nil
	}

	rv := reflect.ValueOf(raw)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Value{}, fmt.Errorf("%w: nil", ErrUnexpectedShape)
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		t := rv.Type()
		m := make(map[string]interface{}, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.PkgPath != "" {
				continue
			}
			name := f.Name
			if tag, ok := f.Tag.Lookup("json"); ok {
				if n := strings.Split(tag, ",")[0]; n != "" && n != "-" {
					name = n
				}
			}
			m[strings.ToLower(name)] = rv.Field(i).Interface()
		}
		return Value{Shape: Keyed, keyed: m}, nil
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			break
		}
		fields := make([]interface{}, rv.Len())
		for i := range fields {
			fields[i] = rv.Index(i).Interface()
		}
		return Value{Shape: Positional, fields: fields}, nil
	}

	return Value{}, fmt.Errorf("%w: %T", ErrUnexpectedShape, raw)
}

// List turns slice-like value into list of its elements.
func List(raw interface{}) ([]interface{}, error) {
	if raw == nil {
		return nil, nil
	}
	if v, ok := raw.([]interface{}); ok {
		return v, nil
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: %T is not a list", ErrUnexpectedShape, raw)
	}

	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out, nil
}

// DecodeProfile decodes profile record (owner, name, createdAt, id, postCount, followerCount, followingCount).
func DecodeProfile(raw interface{}) (*entities.Profile, error) {
	v, err := Classify(raw)
	if err != nil {
		return nil, err
	}

	d := decoder{v: v}
	p := entities.Profile{
		Owner:          d.address(0, "owner", "user", "userAddress"),
		Name:           d.string(1, "name", "username"),
		CreatedAt:      d.time(2, "createdAt", "timestamp"),
		ID:             d.uint(3, "id", "profileId"),
		PostCount:      d.uint(4, "postCount", "posts"),
		FollowerCount:  d.uint(5, "followerCount", "followers"),
		FollowingCount: d.uint(6, "followingCount", "following"),
	}
	if d.err != nil {
		return nil, d.fail(raw)
	}

	p.Exists = p.Owner != (common.Address{})

	return &p, nil
}

// DecodePost decodes post record (author, type, description, url, createdAt, id, likes, comments, isDeleted).
func DecodePost(raw interface{}) (*entities.Post, error) {
	v, err := Classify(raw)
	if err != nil {
		return nil, err
	}

	d := decoder{v: v}
	p := entities.Post{
		Author:      d.address(0, "author", "owner"),
		Type:        entities.PostType(d.uint(1, "postType", "type")),
		Description: d.string(2, "description", "text"),
		ContentURL:  d.string(3, "url", "contentUrl", "ipfsHash"),
		CreatedAt:   d.time(4, "timestamp", "createdAt"),
		ID:          d.uint(5, "id", "postId"),
		Likes:       d.uint(6, "likes", "likeCount"),
		Comments:    d.uint(7, "comments", "commentCount"),
		IsDeleted:   d.bool(8, "isDeleted", "deleted"),
	}
	if d.err != nil {
		return nil, d.fail(raw)
	}

	return &p, nil
}

// DecodeComment decodes comment record (author, text, createdAt, isReply, parentIndex).
func DecodeComment(raw interface{}, index int) (*entities.Comment, error) {
	v, err := Classify(raw)
	if err != nil {
		return nil, err
	}

	d := decoder{v: v}
	c := entities.Comment{
		Index:       index,
		Author:      d.address(0, "author", "commenter"),
		Text:        d.string(1, "text", "content"),
		CreatedAt:   d.time(2, "timestamp", "createdAt"),
		IsReply:     d.bool(3, "isReply"),
		ParentIndex: d.index(4, "parentCommentIndex", "parentIndex"),
	}
	if d.err != nil {
		return nil, d.fail(raw)
	}

	if !c.IsReply {
		c.ParentIndex = entities.NoReply
	}

	return &c, nil
}

// DecodeGroup decodes group details (members, name, description, memberCount, creator).
func DecodeGroup(raw interface{}, id uint64) (*entities.Group, error) {
	v, err := Classify(raw)
	if err != nil {
		return nil, err
	}

	d := decoder{v: v}
	g := entities.Group{
		ID:          id,
		Members:     d.addresses(0, "members", "memberList"),
		Name:        d.string(1, "name"),
		Description: d.string(2, "description"),
		MemberCount: d.uint(3, "memberCount"),
		Creator:     d.address(4, "creator", "owner"),
	}
	if d.err != nil {
		return nil, d.fail(raw)
	}

	return &g, nil
}

// DecodeMessage decodes message record (sender, timestamp, content, isDeleted, replyToIndex).
// Contract stores replyToIndex shifted by one, zero means no reply.
func DecodeMessage(raw interface{}, index int) (*entities.Message, error) {
	v, err := Classify(raw)
	if err != nil {
		return nil, err
	}

	d := decoder{v: v}
	m := entities.Message{
		Index:     index,
		Sender:    d.address(0, "sender", "from"),
		Timestamp: d.time(1, "timestamp", "createdAt"),
		Content:   d.string(2, "content", "text"),
		IsDeleted: d.bool(3, "isDeleted", "deleted"),
	}
	reply := d.index(4, "replyToIndex", "replyTo")
	if d.err != nil {
		return nil, d.fail(raw)
	}

	m.ReplyToIndex = reply - 1

	return &m, nil
}

// DecodeList decodes page of records returned either as (items, total) positional outputs,
// as keyed {items|posts|users, total} or as a bare list.
func DecodeList(raw interface{}, keys ...string) ([]interface{}, uint64, error) {
	v, err := Classify(raw)
	if err != nil {
		return nil, 0, err
	}

	var items interface{}
	var total interface{}

	switch v.Shape {
	case Keyed:
		var ok bool
		if items, ok = v.Field(0, append(keys, "items")...); !ok {
			return nil, 0, fmt.Errorf("%w: no items field", ErrUnexpectedShape)
		}
		total, _ = v.Field(1, "total", "totalCount", "count")
	case Positional:
		// (items) and (items, total) wrap a list of records, anything else is a bare list of records.
		wrapped := v.Len() == 1 && isRecordList(v.fields[0]) ||
			v.Len() == 2 && isRecordList(v.fields[0]) && !isList(v.fields[1])
		if !wrapped {
			items = v.fields
			break
		}
		items = v.fields[0]
		if v.Len() > 1 {
			total = v.fields[1]
		}
	}

	list, err := List(items)
	if err != nil {
		return nil, 0, err
	}

	n := uint64(len(list))
	if total != nil {
		if n, err = Uint64(total); err != nil {
			return nil, 0, err
		}
	}

	return list, n, nil
}

func isList(v interface{}) bool {
	if v == nil {
		return false
	}
	if _, ok := v.([]interface{}); ok {
		return true
	}
	k := reflect.TypeOf(v).Kind()
	if k == reflect.Array {
		// common.Address and common.Hash are byte arrays
		return reflect.TypeOf(v).Elem().Kind() != reflect.Uint8
	}
	return k == reflect.Slice && reflect.TypeOf(v).Elem().Kind() != reflect.Uint8
}

// isRecordList reports whether v is a list whose every element is a record.
// A positional record holds scalars, so it is never taken for a list of records.
func isRecordList(v interface{}) bool {
	list, err := List(v)
	if err != nil || !isList(v) {
		return false
	}
	for _, e := range list {
		if !isRecord(e) {
			return false
		}
	}
	return true
}

var bigIntType = reflect.TypeOf(big.Int{})

func isRecord(v interface{}) bool {
	if isList(v) {
		return true
	}
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		return true
	case reflect.Struct:
		return rv.Type() != bigIntType
	}
	return false
}

type decoder struct {
	v   Value
	err error
}

func (d *decoder) field(i int, names []string) (interface{}, bool) {
	if d.err != nil {
		return nil, false
	}
	f, ok := d.v.Field(i, names...)
	if !ok {
		d.err = fmt.Errorf("%w: missing field %s", ErrUnexpectedShape, names[0])
	}
	return f, ok
}

func (d *decoder) address(i int, names ...string) common.Address {
	f, ok := d.field(i, names)
	if !ok {
		return common.Address{}
	}
	a, err := Address(f)
	if err != nil {
		d.err = fmt.Errorf("field %s: %w", names[0], err)
	}
	return a
}

func (d *decoder) addresses(i int, names ...string) []common.Address {
	f, ok := d.field(i, names)
	if !ok {
		return nil
	}
	list, err := List(f)
	if err != nil {
		d.err = fmt.Errorf("field %s: %w", names[0], err)
		return nil
	}
	out := make([]common.Address, 0, len(list))
	for _, v := range list {
		a, err := Address(v)
		if err != nil {
			d.err = fmt.Errorf("field %s: %w", names[0], err)
			return nil
		}
		out = append(out, a)
	}
	return out
}

func (d *decoder) string(i int, names ...string) string {
	f, ok := d.field(i, names)
	if !ok {
		return ""
	}
	s, ok := f.(string)
	if !ok {
		d.err = fmt.Errorf("%w: field %s is %T", ErrUnexpectedShape, names[0], f)
	}
	return s
}

func (d *decoder) bool(i int, names ...string) bool {
	f, ok := d.field(i, names)
	if !ok {
		return false
	}
	b, ok := f.(bool)
	if !ok {
		d.err = fmt.Errorf("%w: field %s is %T", ErrUnexpectedShape, names[0], f)
	}
	return b
}

func (d *decoder) uint(i int, names ...string) uint64 {
	f, ok := d.field(i, names)
	if !ok {
		return 0
	}
	n, err := Uint64(f)
	if err != nil {
		d.err = fmt.Errorf("field %s: %w", names[0], err)
	}
	return n
}

// index decodes array index, values which don't fit int are rejected.
func (d *decoder) index(i int, names ...string) int {
	n := d.uint(i, names...)
	if d.err == nil && n > math.MaxInt {
		d.err = fmt.Errorf("%w: field %s is out of range", ErrUnexpectedShape, names[0])
		return 0
	}
	return int(n)
}

func (d *decoder) time(i int, names ...string) time.Time {
	n := d.uint(i, names...)
	if n == 0 || n > math.MaxInt64 {
		return time.Time{}
	}
	return time.Unix(int64(n), 0).UTC()
}

func (d *decoder) fail(raw interface{}) error {
	log.WithError(d.err).Debugf("failed to decode value: %s", spew.Sdump(raw))
	return d.err
}

// Address converts address-like value.
func Address(v interface{}) (common.Address, error) {
	switch a := v.(type) {
	case common.Address:
		return a, nil
	case *common.Address:
		if a == nil {
			return common.Address{}, nil
		}
		return *a, nil
	case [20]byte:
		return common.Address(a), nil
	case string:
		if a == "" {
			return common.Address{}, nil
		}
		if !common.IsHexAddress(a) {
			return common.Address{}, fmt.Errorf("%w: invalid address %q", ErrUnexpectedShape, a)
		}
		return common.HexToAddress(a), nil
	}

	return common.Address{}, fmt.Errorf("%w: %T is not an address", ErrUnexpectedShape, v)
}

// Uint64 coerces wide integers into uint64. Negative values become 0, values over uint64 saturate.
func Uint64(v interface{}) (uint64, error) {
	var b *big.Int

	switch n := v.(type) {
	case *big.Int:
		b = n
	case big.Int:
		b = &n
	case uint8:
		return uint64(n), nil
	case uint16:
		return uint64(n), nil
	case uint32:
		return uint64(n), nil
	case uint64:
		return n, nil
	case uint:
		return uint64(n), nil
	case int8, int16, int32, int64, int:
		i := reflect.ValueOf(n).Int()
		if i < 0 {
			return 0, nil
		}
		return uint64(i), nil
	case float64:
		if n < 0 {
			return 0, nil
		}
		if n >= math.MaxUint64 {
			return math.MaxUint64, nil
		}
		return uint64(n), nil
	case string:
		var ok bool
		if b, ok = new(big.Int).SetString(n, 0); !ok {
			return 0, fmt.Errorf("%w: invalid number %q", ErrUnexpectedShape, n)
		}
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: %T is not a number", ErrUnexpectedShape, v)
	}

	if b == nil || b.Sign() <= 0 {
		return 0, nil
	}
	if !b.IsUint64() {
		return math.MaxUint64, nil
	}

	return b.Uint64(), nil
}

// FormatArg formats contract argument for logs and tx records.
func FormatArg(v interface{}) string {
	switch a := v.(type) {
	case common.Address:
		return a.Hex()
	case *big.Int:
		return a.String()
	case string:
		return a
	case bool:
		return strconv.FormatBool(a)
	default:
		return fmt.Sprint(v)
	}
}
