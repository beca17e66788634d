package rcg

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding"

	"firestige.xyz/rcg/pkg/log"
)

type parserState int

const (
	stateUnstarted parserState = iota
	stateStreaming
	stateExhausted
)

// ShowStrategy selects the text show decoder.
type ShowStrategy int

const (
	// ShowFast scans show lines in a single pass with minimal validation.
	ShowFast ShowStrategy = iota
	// ShowSafe scans show lines against format templates and rejects any
	// malformed player entry.
	ShowSafe
)

func (s ShowStrategy) String() string {
	if s == ShowSafe {
		return "safe"
	}
	return "fast"
}

// ParseShowStrategy accepts "fast" or "safe".
func ParseShowStrategy(s string) (ShowStrategy, error) {
	switch s {
	case "fast", "":
		return ShowFast, nil
	case "safe":
		return ShowSafe, nil
	}
	return ShowFast, fmt.Errorf("rcg: unknown show strategy %q", s)
}

const headerMagic = "ULG"

// binary mode tags
const (
	modeNoInfo      int16 = 0
	modeShow        int16 = 1
	modeMsg         int16 = 2
	modeDraw        int16 = 3
	modeBlank       int16 = 4
	modePlayMode    int16 = 5
	modeTeam        int16 = 6
	modePlayerType  int16 = 7
	modeServerParam int16 = 8
	modePlayerParam int16 = 9
)

type options struct {
	strategy   ShowStrategy
	strict     bool
	version    LogVersion
	askHandler bool
	logger     log.Logger
	msgDecoder *encoding.Decoder
}

type Option func(*options)

// WithShowStrategy selects the text show decoder. The default is ShowFast.
func WithShowStrategy(s ShowStrategy) Option {
	return func(o *options) { o.strategy = s }
}

// WithStrict fails a show record that carries player entries that could not
// be decoded or placed, instead of dropping those entries.
func WithStrict(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// WithVersion fixes the generation up front and skips header detection, for
// streams whose header was consumed elsewhere.
func WithVersion(v LogVersion) Option {
	return func(o *options) { o.version = v }
}

// WithHandlerVersion makes ParseHeader ask the handler for a negotiated
// generation before reading the header. Off by default, since a handler that
// remembers HandleLogVersion would otherwise pin every later stream to the
// first one's generation.
func WithHandlerVersion(ask bool) Option {
	return func(o *options) { o.askHandler = ask }
}

// WithLogger sets the diagnostic logger. The default is log.GetLogger().
func WithLogger(l log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMessageDecoder converts message text from a legacy 8-bit charset.
func WithMessageDecoder(d *encoding.Decoder) Option {
	return func(o *options) { o.msgDecoder = d }
}

// Parser decodes one record per Parse call. It is not safe for concurrent
// use; distinct Parsers are independent.
type Parser struct {
	r        *bufio.Reader
	opts     options
	log      log.Logger
	stats    Stats
	state    parserState
	version  LogVersion
	lastTime int
	offset   int64
	line     int
}

// NewParser creates a Parser reading from r.
func NewParser(r io.Reader, opts ...Option) *Parser {
	p := &Parser{}
	for _, o := range opts {
		o(&p.opts)
	}
	p.log = p.opts.logger
	if p.log == nil {
		p.log = log.GetLogger()
	}
	if br, ok := r.(*bufio.Reader); ok && br.Size() >= 4096 {
		p.r = br
	} else {
		p.r = bufio.NewReaderSize(r, 64*1024)
	}
	return p
}

// Version returns the detected generation, VersionUnknown before the header.
func (p *Parser) Version() LogVersion { return p.version }

// Stats exposes the decode counters.
func (p *Parser) Stats() *Stats { return &p.stats }

// Exhausted reports whether the end of stream has been reported.
func (p *Parser) Exhausted() bool { return p.state == stateExhausted }

// ParseHeader fixes the log version. It is a no-op once the version is known.
//
// Priority: WithVersion option → h.LogVersion() when WithHandlerVersion is
// set → the stream header. A stream whose first four bytes are not a known
// header is taken as V1 and nothing is consumed.
func (p *Parser) ParseHeader(h Handler) error {
	if p.state != stateUnstarted {
		return nil
	}

	v := p.opts.version
	if v == VersionUnknown && h != nil && p.opts.askHandler {
		v = h.LogVersion()
	}
	if v == VersionUnknown {
		var err error
		if v, err = p.detectHeader(); err != nil {
			return err
		}
	}

	p.version = v
	p.state = stateStreaming
	p.log.WithField("version", v).Debug("log version fixed")
	if h == nil {
		return nil
	}
	return p.dispatch(h).logVersion(v)
}

func (p *Parser) detectHeader() (LogVersion, error) {
	b, err := p.r.Peek(4)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return VersionUnknown, fmt.Errorf("rcg: read header: %w", err)
	}
	if len(b) < 4 || string(b[:3]) != headerMagic {
		return V1, nil
	}

	var v LogVersion
	switch b[3] {
	case 2:
		v = V2
	case 3:
		v = V3
	case '4':
		v = V4
	case '5':
		v = V5
	default:
		p.log.WithField("byte", fmt.Sprintf("0x%02x", b[3])).
			Warn("unknown header version, assuming legacy log")
		return V1, nil
	}

	p.consume(4)
	if v.IsText() {
		// the header line may carry trailing text
		rest, err := p.r.ReadString('\n')
		p.offset += int64(len(rest))
		p.stats.Bytes.Add(uint64(len(rest)))
		if err != nil && !errors.Is(err, io.EOF) {
			return VersionUnknown, fmt.Errorf("rcg: read header: %w", err)
		}
		p.line = 1
	}
	return v, nil
}

func (p *Parser) consume(n int) {
	d, _ := p.r.Discard(n)
	p.offset += int64(d)
	p.stats.Bytes.Add(uint64(d))
}

func (p *Parser) dispatch(h Handler) dispatcher {
	return dispatcher{h: h, stats: &p.stats}
}

// Parse decodes exactly one record and forwards it to h. The first call only
// fixes the log version.
//
// It returns io.EOF once the stream is exhausted; h.HandleEOF is called on
// the first such return only. Decode failures are returned as *RecordError
// and leave the Parser usable for the next call.
func (p *Parser) Parse(h Handler) error {
	switch p.state {
	case stateUnstarted:
		return p.ParseHeader(h)
	case stateExhausted:
		return io.EOF
	}

	var err error
	if p.version.IsText() {
		err = p.parseText(h)
	} else {
		err = p.parseBinary(h)
	}

	if errors.Is(err, io.EOF) {
		p.state = stateExhausted
		p.log.WithField("bytes", p.offset).Debug("end of stream")
		if herr := p.dispatch(h).eof(); herr != nil {
			return herr
		}
		return io.EOF
	}

	var recErr *RecordError
	if errors.As(err, &recErr) {
		p.stats.DecodeErrors.Add(1)
		p.log.WithError(recErr.Err).WithFields(map[string]interface{}{
			"version": recErr.Version,
			"offset":  recErr.Offset,
			"line":    recErr.Line,
		}).Warnf("decode failed: %s", clip(recErr.Text, 80))
	}
	return err
}

// Run parses until the end of stream. Record errors are logged and skipped;
// handler and transport errors stop the run.
func (p *Parser) Run(h Handler) error {
	for {
		err := p.Parse(h)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return nil
		default:
			var recErr *RecordError
			if !errors.As(err, &recErr) {
				return err
			}
		}
	}
}

func (p *Parser) recordError(start int64, err error) *RecordError {
	return &RecordError{Version: p.version, Offset: start, Err: err}
}

func (p *Parser) lineError(start int64, text string, err error) *RecordError {
	return &RecordError{Version: p.version, Offset: start, Line: p.line, Text: text, Err: err}
}

func (p *Parser) decodeMessage(b []byte) string {
	if p.opts.msgDecoder == nil {
		return string(b)
	}
	out, err := p.opts.msgDecoder.Bytes(b)
	if err != nil {
		p.log.WithError(err).Debug("message charset conversion failed")
		return string(b)
	}
	return string(out)
}

// ─── Text generations ──────────────────────────────────────────────────────

// parseText reads lines until a non-blank one and decodes it.
func (p *Parser) parseText(h Handler) error {
	for {
		start := p.offset
		raw, err := p.r.ReadBytes('\n')
		p.offset += int64(len(raw))
		p.stats.Bytes.Add(uint64(len(raw)))
		if len(raw) == 0 {
			if err == nil || errors.Is(err, io.EOF) {
				return io.EOF
			}
			return fmt.Errorf("rcg: read line: %w", err)
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("rcg: read line: %w", err)
		}
		p.line++

		line := bytes.TrimRight(raw, "\r\n")
		if len(bytes.TrimSpace(line)) == 0 {
			p.stats.SkippedLines.Add(1)
			continue
		}
		return p.decodeLine(h, start, line)
	}
}

func (p *Parser) decodeLine(h Handler, start int64, line []byte) error {
	d := p.dispatch(h)
	tag := lineTag(line)

	switch tag {
	case "show":
		var rec ShowRecord
		var dropped []playerSlot
		var err error
		if p.opts.strategy == ShowSafe {
			dropped, err = decodeShowSafe(line, &rec)
		} else {
			dropped, err = decodeShowFast(line, &rec)
		}
		if err == nil && p.opts.strict && len(dropped) > 0 {
			err = fmt.Errorf("%w: %d player entries dropped", ErrMalformedRecord, len(dropped))
		}
		if err != nil {
			return p.lineError(start, string(line), err)
		}
		p.lastTime = rec.Time
		p.reportDropped(dropped)
		return d.show(&rec)

	case "msg":
		m, err := decodeMsgLine(line)
		if err != nil {
			return p.lineError(start, string(line), err)
		}
		m.Text = p.decodeMessage([]byte(m.Text))
		return d.msg(&m)

	case "draw":
		time, obj, err := decodeDrawLine(line)
		if err != nil {
			return p.lineError(start, string(line), err)
		}
		return d.draw(time, &obj)

	case "playmode":
		time, pm, err := decodePlayModeLine(line)
		if err != nil {
			return p.lineError(start, string(line), err)
		}
		return d.playMode(time, pm)

	case "team":
		t, err := decodeTeamLine(line)
		if err != nil {
			return p.lineError(start, string(line), err)
		}
		return d.team(&t)

	case "server_param":
		var sp ServerParam
		if err := decodeParamLine(line, serverParamTable, &sp, p.unknownName); err != nil {
			return p.lineError(start, string(line), err)
		}
		return d.serverParam(&sp)

	case "player_param":
		var pp PlayerParam
		if err := decodeParamLine(line, playerParamTable, &pp, p.unknownName); err != nil {
			return p.lineError(start, string(line), err)
		}
		return d.playerParam(&pp)

	case "player_type":
		var pt PlayerType
		if err := decodeParamLine(line, playerTypeTable, &pt, p.unknownName); err != nil {
			return p.lineError(start, string(line), err)
		}
		return d.playerType(&pt)
	}

	return p.lineError(start, string(line), ErrUnknownRecord)
}

func (p *Parser) unknownName(tag, name, value string) {
	p.stats.UnknownNames.Add(1)
	p.log.WithFields(map[string]interface{}{
		"record": tag,
		"name":   name,
		"line":   p.line,
	}).Debugf("unknown parameter skipped: %s", value)
}

func (p *Parser) reportDropped(dropped []playerSlot) {
	for _, s := range dropped {
		p.stats.DroppedPlayers.Add(1)
		p.log.WithFields(map[string]interface{}{
			"side": int(s.side),
			"unum": s.unum,
			"time": p.lastTime,
		}).Debug("player entry out of range, dropped")
	}
}

// ─── Binary generations ────────────────────────────────────────────────────

// readPayload reads a fixed payload after the record start. An end of stream
// inside the payload is a truncated record, never a clean end.
func (p *Parser) readPayload(n int) ([]byte, error) {
	buf := make([]byte, n)
	got, err := io.ReadFull(p.r, buf)
	p.offset += int64(got)
	p.stats.Bytes.Add(uint64(got))
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTruncated
		}
		return nil, err
	}
	return buf, nil
}

// readHead reads the first bytes of a record. Zero bytes means a clean end.
func (p *Parser) readHead(n int) ([]byte, error) {
	buf := make([]byte, n)
	got, err := io.ReadFull(p.r, buf)
	p.offset += int64(got)
	p.stats.Bytes.Add(uint64(got))
	switch {
	case err == nil:
		return buf, nil
	case errors.Is(err, io.EOF):
		return nil, io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		return nil, ErrTruncated
	}
	return nil, err
}

func (p *Parser) parseBinary(h Handler) error {
	start := p.offset
	err := p.decodeBinary(h, start)
	if err == nil || errors.Is(err, io.EOF) {
		return err
	}
	var herr *HandlerError
	if errors.As(err, &herr) {
		return err
	}
	if errors.Is(err, ErrTruncated) || errors.Is(err, ErrUnknownMode) || errors.Is(err, ErrMalformedRecord) {
		return p.recordError(start, err)
	}
	return fmt.Errorf("rcg: read record: %w", err)
}

func (p *Parser) decodeBinary(h Handler, start int64) error {
	if p.version == V1 {
		return p.decodeDispInfo(h)
	}

	head, err := p.readHead(2)
	if err != nil {
		return err
	}
	mode := int16(uint16(head[0])<<8 | uint16(head[1]))
	d := p.dispatch(h)

	switch mode {
	case modeNoInfo, modeBlank:
		return nil

	case modeShow:
		layout := showLayouts[p.version]
		b, err := p.readPayload(layout.size)
		if err != nil {
			return err
		}
		var rec ShowRecord
		dropped := layout.decode(b, &rec)
		if p.opts.strict && len(dropped) > 0 {
			return fmt.Errorf("%w: %d player entries dropped", ErrMalformedRecord, len(dropped))
		}
		p.lastTime = rec.Time
		p.reportDropped(dropped)
		return d.show(&rec)

	case modeMsg:
		b, err := p.readPayload(4)
		if err != nil {
			return err
		}
		r := newWireReader(b)
		board := int(r.int16())
		n := int(r.int16())
		if n < 0 {
			return fmt.Errorf("%w: negative message length %d", ErrMalformedRecord, n)
		}
		body, err := p.readPayload(n)
		if err != nil {
			return err
		}
		m := MsgRecord{Time: p.lastTime, Board: board, Text: p.decodeMessage([]byte(trimMsg(body)))}
		return d.msg(&m)

	case modeDraw:
		b, err := p.readPayload(drawInfoSize)
		if err != nil {
			return err
		}
		obj, ok := decodeDrawInfo(b)
		if !ok {
			return fmt.Errorf("%w: draw mode %d", ErrMalformedRecord, obj.mode)
		}
		return d.draw(p.lastTime, &obj)

	case modePlayMode:
		b, err := p.readPayload(1)
		if err != nil {
			return err
		}
		return d.playMode(p.lastTime, PlayMode(b[0]))

	case modeTeam:
		b, err := p.readPayload(2 * teamWireSize)
		if err != nil {
			return err
		}
		t := decodeTeamPair(newWireReader(b))
		t.Time = p.lastTime
		return d.team(&t)

	case modePlayerType:
		b, err := p.readPayload(playerTypeLayout.size)
		if err != nil {
			return err
		}
		var pt PlayerType
		playerTypeLayout.decode(b, &pt)
		return d.playerType(&pt)

	case modeServerParam:
		b, err := p.readPayload(serverParamLayout.size)
		if err != nil {
			return err
		}
		var sp ServerParam
		serverParamLayout.decode(b, &sp)
		return d.serverParam(&sp)

	case modePlayerParam:
		b, err := p.readPayload(playerParamLayout.size)
		if err != nil {
			return err
		}
		var pp PlayerParam
		playerParamLayout.decode(b, &pp)
		return d.playerParam(&pp)
	}

	return fmt.Errorf("%w: %d", ErrUnknownMode, mode)
}

// decodeDispInfo reads one fixed dispinfo_t of the legacy generation.
func (p *Parser) decodeDispInfo(h Handler) error {
	b, err := p.readHead(dispInfoSize)
	if err != nil {
		return err
	}
	mode := int16(uint16(b[0])<<8 | uint16(b[1]))
	body := b[2:]
	d := p.dispatch(h)

	switch mode {
	case modeShow:
		var rec ShowRecord
		dropped := decodeShowInfo(body[:showInfoSize], &rec)
		if p.opts.strict && len(dropped) > 0 {
			return fmt.Errorf("%w: %d player entries dropped", ErrMalformedRecord, len(dropped))
		}
		p.lastTime = rec.Time
		p.reportDropped(dropped)
		return d.show(&rec)

	case modeMsg:
		m := decodeMsgInfoV1(body[:msgInfoSize])
		m.Time = p.lastTime
		m.Text = p.decodeMessage([]byte(m.Text))
		return d.msg(&m)

	case modeDraw:
		obj, ok := decodeDrawInfo(body[:drawInfoSize])
		if !ok {
			return fmt.Errorf("%w: draw mode %d", ErrMalformedRecord, obj.mode)
		}
		return d.draw(p.lastTime, &obj)
	}

	return fmt.Errorf("%w: %d", ErrUnknownMode, mode)
}
