package upstream

import "sort"

// Endpoint names used by callers and in LEGAL_API_HOST_OVERRIDES.
const (
	RecommendClauses      = "recommend-clauses"
	SummarizeContract     = "summarize-contract"
	CompareContracts      = "compare-contracts"
	LegalLens             = "legal-lens"
	Headnote              = "headnote"
	IPCClassifier         = "ipc-classifier"
	LegalResearch         = "legal-research"
	TextSummarizer        = "text-summarizer"
	UploadDocument        = "upload-document"
	ContinueIPC           = "continue-conversation-ipc"
	ContinueLegalResearch = "continue-conversation-legal-research"
	QueryDocument         = "query-document"
	EmployeeAgreementChat = "employee-agreement-chat"
	EmployeeAgreement     = "employee-agreement"
	NDA                   = "nda"
	RecentFiles           = "recent-files"
	DownloadDocument      = "download-document"
)

// Endpoint describes one route on the legal API. Multipart endpoints list the
// file fields they require, JSON endpoints list required body keys.
type Endpoint struct {
	Name   string
	Path   string
	Label  string
	JSON   bool
	Method string

	FileFields   []string
	MultiFile    bool
	QueryParams  []string
	RequiredJSON []string

	// ResultPath is a gjson path to the reply text. PromptPath is read when
	// the result is absent, drafting endpoints answer with a question then.
	ResultPath string
	PromptPath string
}

var endpoints = map[string]Endpoint{
	RecommendClauses: {
		Path:        "/recommend-clauses",
		Label:       "recommended clauses",
		FileFields:  []string{"file"},
		QueryParams: []string{"contract_type"},
		ResultPath:  "additional_clauses.clause",
	},
	SummarizeContract: {
		Path:       "/summarize-contract",
		Label:      "contract summary",
		FileFields: []string{"file"},
		ResultPath: "contract_summary",
	},
	CompareContracts: {
		Path:       "/compare-contracts",
		Label:      "contract comparison",
		FileFields: []string{"file_v1", "file_v2"},
		ResultPath: "changes_summary",
	},
	LegalLens: {
		Path:       "/legal-lens",
		Label:      "proofread report",
		FileFields: []string{"file"},
		ResultPath: "proofread_report.proofread_analysis",
	},
	Headnote: {
		Path:       "/headnote/",
		Label:      "headnote",
		FileFields: []string{"file"},
		ResultPath: "headnote",
	},
	IPCClassifier: {
		Path:       "/ipc-classifier",
		Label:      "IPC sections",
		FileFields: []string{"file"},
		ResultPath: "ipc_sections",
	},
	LegalResearch: {
		Path:       "/legal-research/",
		Label:      "legal research",
		FileFields: []string{"file"},
		MultiFile:  true,
		ResultPath: "research_result",
	},
	TextSummarizer: {
		Path:       "/text-summarizer/",
		Label:      "summary",
		FileFields: []string{"file"},
		ResultPath: "summary",
	},
	UploadDocument: {
		Path:       "/upload_document/",
		Label:      "document",
		FileFields: []string{"file"},
		ResultPath: "bg",
	},
	ContinueIPC: {
		Path:         "/continue-conversation-ipc",
		Label:        "reply",
		JSON:         true,
		RequiredJSON: []string{"user_input", "session_id"},
		ResultPath:   "response",
	},
	ContinueLegalResearch: {
		Path:         "/continue-conversation-legal-research/",
		Label:        "reply",
		JSON:         true,
		RequiredJSON: []string{"user_input", "session_id"},
		ResultPath:   "response",
	},
	QueryDocument: {
		Path:         "/query_document/",
		Label:        "answer",
		JSON:         true,
		RequiredJSON: []string{"query", "document_id"},
		ResultPath:   "answer",
	},
	EmployeeAgreementChat: {
		Path:       "/employeeagreementchat",
		Label:      "first question",
		JSON:       true,
		ResultPath: "message",
	},
	EmployeeAgreement: {
		Path:         "/employeeagreementprocess_response",
		Label:        "agreement",
		JSON:         true,
		RequiredJSON: []string{"message"},
		ResultPath:   "agreement_text",
		PromptPath:   "message",
	},
	NDA: {
		Path:         "/nda_process_response",
		Label:        "NDA",
		JSON:         true,
		RequiredJSON: []string{"message"},
		ResultPath:   "nda_details",
		PromptPath:   "message",
	},
	RecentFiles: {
		Path:   "/recent-files/{folder}",
		Label:  "history",
		Method: "GET",
	},
	DownloadDocument: {
		Path:   "/download-document/{id}",
		Label:  "document",
		Method: "GET",
	},
}

func init() {
	for name, ep := range endpoints {
		ep.Name = name
		if ep.Method == "" {
			ep.Method = "POST"
		}
		endpoints[name] = ep
	}
}

func Lookup(name string) (Endpoint, bool) {
	ep, ok := endpoints[name]
	return ep, ok
}

// Names lists every endpoint name, sorted.
func Names() []string {
	names := make([]string, 0, len(endpoints))
	for name := range endpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
