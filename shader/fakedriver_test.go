package shader

import (
	"regexp"
	"strings"

	"shaderlab/internal/glcall"
)

type fakeShader struct {
	stage    Stage
	src      string
	compiled bool
}

type fakeProgram struct {
	attached  []uint32
	sources   []string
	linked    bool
	validated bool
	uniforms  map[string]int32
}

// fakeDriver is an in-memory Driver. A shader compiles when its source
// declares main and contains no #error directive.
type fakeDriver struct {
	next     uint32
	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram
	current  uint32
	pending  []uint32

	failLink     bool
	failValidate bool

	// Raise an error from the named calls while still doing the work.
	failCreateShader  bool
	failCreateProgram bool
	failDeleteShader  bool

	lookups  int
	uniforms map[int32][]float32
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		shaders:  make(map[uint32]*fakeShader),
		programs: make(map[uint32]*fakeProgram),
		uniforms: make(map[int32][]float32),
	}
}

func (d *fakeDriver) raise(code uint32) { d.pending = append(d.pending, code) }

func (d *fakeDriver) GetError() uint32 {
	if len(d.pending) == 0 {
		return glcall.NoError
	}
	code := d.pending[0]
	d.pending = d.pending[1:]
	return code
}

func (d *fakeDriver) CreateShader(stage Stage) uint32 {
	d.next++
	d.shaders[d.next] = &fakeShader{stage: stage}
	if d.failCreateShader {
		d.raise(glcall.OutOfMemory)
	}
	return d.next
}

func (d *fakeDriver) ShaderSource(id uint32, src string) {
	if s, ok := d.shaders[id]; ok {
		s.src = src
		return
	}
	d.raise(glcall.InvalidValue)
}

func (d *fakeDriver) CompileShader(id uint32) {
	s, ok := d.shaders[id]
	if !ok {
		d.raise(glcall.InvalidValue)
		return
	}
	s.compiled = strings.Contains(s.src, "void main") && !strings.Contains(s.src, "#error")
}

func (d *fakeDriver) ShaderCompileStatus(id uint32) bool {
	s, ok := d.shaders[id]
	return ok && s.compiled
}

func (d *fakeDriver) ShaderInfoLog(id uint32) string {
	if s, ok := d.shaders[id]; ok && !s.compiled {
		return "0:1(1): error: syntax error, unexpected end of file"
	}
	return ""
}

func (d *fakeDriver) DeleteShader(id uint32) {
	if id == 0 {
		return
	}
	if _, ok := d.shaders[id]; !ok {
		d.raise(glcall.InvalidValue)
		return
	}
	delete(d.shaders, id)
	if d.failDeleteShader {
		d.raise(glcall.InvalidOperation)
	}
}

func (d *fakeDriver) CreateProgram() uint32 {
	d.next++
	d.programs[d.next] = &fakeProgram{}
	if d.failCreateProgram {
		d.raise(glcall.OutOfMemory)
	}
	return d.next
}

func (d *fakeDriver) AttachShader(prog, id uint32) {
	p, ok := d.programs[prog]
	s, sok := d.shaders[id]
	if !ok || !sok {
		d.raise(glcall.InvalidValue)
		return
	}
	p.attached = append(p.attached, id)
	p.sources = append(p.sources, s.src)
}

func (d *fakeDriver) LinkProgram(prog uint32) {
	p, ok := d.programs[prog]
	if !ok {
		d.raise(glcall.InvalidValue)
		return
	}
	stages := map[Stage]bool{}
	for _, id := range p.attached {
		if s, ok := d.shaders[id]; ok && s.compiled {
			stages[s.stage] = true
		}
	}
	p.linked = !d.failLink && stages[StageVertex] && stages[StageFragment]
	if p.linked {
		p.uniforms = make(map[string]int32)
		re := regexp.MustCompile(`uniform\s+\w+\s+(\w+)`)
		for _, src := range p.sources {
			for _, m := range re.FindAllStringSubmatch(src, -1) {
				if _, ok := p.uniforms[m[1]]; !ok {
					p.uniforms[m[1]] = int32(len(p.uniforms))
				}
			}
		}
	}
}

func (d *fakeDriver) ProgramLinkStatus(prog uint32) bool {
	p, ok := d.programs[prog]
	return ok && p.linked
}

func (d *fakeDriver) ValidateProgram(prog uint32) {
	p, ok := d.programs[prog]
	if !ok {
		d.raise(glcall.InvalidValue)
		return
	}
	p.validated = p.linked && !d.failValidate
}

func (d *fakeDriver) ProgramValidateStatus(prog uint32) bool {
	p, ok := d.programs[prog]
	return ok && p.validated
}

func (d *fakeDriver) ProgramInfoLog(prog uint32) string {
	p, ok := d.programs[prog]
	switch {
	case !ok:
		return ""
	case !p.linked:
		return "error: linking with uncompiled/unspecialized shader"
	case !p.validated:
		return "Validation Failed: No vertex array object bound."
	}
	return ""
}

func (d *fakeDriver) DeleteProgram(prog uint32) {
	if prog == 0 {
		return
	}
	if _, ok := d.programs[prog]; !ok {
		d.raise(glcall.InvalidValue)
		return
	}
	delete(d.programs, prog)
}

func (d *fakeDriver) UseProgram(prog uint32) {
	if prog != 0 {
		if p, ok := d.programs[prog]; !ok || !p.linked {
			d.raise(glcall.InvalidOperation)
			return
		}
	}
	d.current = prog
}

func (d *fakeDriver) UniformLocation(prog uint32, name string) int32 {
	d.lookups++
	p, ok := d.programs[prog]
	if !ok || !p.linked {
		d.raise(glcall.InvalidOperation)
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *fakeDriver) setUniform(loc int32, v ...float32) {
	if d.current == 0 {
		d.raise(glcall.InvalidOperation)
		return
	}
	d.uniforms[loc] = v
}

func (d *fakeDriver) Uniform1i(loc int32, v int32)                { d.setUniform(loc, float32(v)) }
func (d *fakeDriver) Uniform1f(loc int32, v float32)              { d.setUniform(loc, v) }
func (d *fakeDriver) Uniform4f(loc int32, v0, v1, v2, v3 float32) { d.setUniform(loc, v0, v1, v2, v3) }
func (d *fakeDriver) UniformMatrix4fv(loc int32, m [16]float32)   { d.setUniform(loc, m[:]...) }
