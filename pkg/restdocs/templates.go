package restdocs

import "github.com/valyala/fasttemplate"

const (
	curlTemplate = "[source,bash]\n" +
		"----\n" +
		"$ curl '{{url}}' -i -X {{method}}{{options}}\n" +
		"----\n"

	httpRequestTemplate = "[source,http,options=\"nowrap\"]\n" +
		"----\n" +
		"{{method}} {{target}} HTTP/1.1\n" +
		"{{headers}}" +
		"\n" +
		"{{body}}" +
		"----\n"

	httpResponseTemplate = "[source,http,options=\"nowrap\"]\n" +
		"----\n" +
		"HTTP/1.1 {{status}} {{reason}}\n" +
		"{{headers}}" +
		"\n" +
		"{{body}}" +
		"----\n"

	tableTemplate = "{{caption}}" +
		"|===\n" +
		"|{{key}}|Type|Optional|Constraints|Description\n" +
		"{{rows}}" +
		"\n" +
		"|===\n"

	rowTemplate = "\n" +
		"|`{{name}}`\n" +
		"|`{{type}}`\n" +
		"|`{{optional}}`\n" +
		"|{{constraints}}\n" +
		"|{{description}}\n"
)

var (
	curlTmpl         = fasttemplate.New(curlTemplate, "{{", "}}")
	httpRequestTmpl  = fasttemplate.New(httpRequestTemplate, "{{", "}}")
	httpResponseTmpl = fasttemplate.New(httpResponseTemplate, "{{", "}}")
	tableTmpl        = fasttemplate.New(tableTemplate, "{{", "}}")
	rowTmpl          = fasttemplate.New(rowTemplate, "{{", "}}")
)
