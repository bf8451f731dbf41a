// Package docs holds the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/healthz": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Liveness check",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Readiness check",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "503": {
                        "description": "Service Unavailable"
                    }
                }
            }
        },
        "/budget/options": {
            "get": {
                "tags": [
                    "budget"
                ],
                "summary": "Major head and scheme options",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "bill_type",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "major_head",
                        "in": "query",
                        "required": false
                    }
                ]
            }
        },
        "/budget": {
            "get": {
                "tags": [
                    "budget"
                ],
                "summary": "List budget entries for a bill type",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "bill_type",
                        "in": "query",
                        "required": true
                    }
                ]
            },
            "post": {
                "tags": [
                    "budget"
                ],
                "summary": "Add a budget entry",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "422": {
                        "description": "Unprocessable Entity"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.CreateBudgetRequest"
                        }
                    }
                ]
            }
        },
        "/works/options": {
            "get": {
                "tags": [
                    "works"
                ],
                "summary": "Workcode and nomenclature options",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "bill_type",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "name": "major_head",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "name": "scheme",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "name": "workcode",
                        "in": "query",
                        "required": false
                    }
                ]
            }
        },
        "/works": {
            "get": {
                "tags": [
                    "works"
                ],
                "summary": "List works",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "tags": [
                    "works"
                ],
                "summary": "Create a work",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "422": {
                        "description": "Unprocessable Entity"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.CreateWorkRequest"
                        }
                    }
                ]
            }
        },
        "/works/{id}": {
            "get": {
                "tags": [
                    "works"
                ],
                "summary": "Get a work",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/contractors": {
            "get": {
                "tags": [
                    "contractors"
                ],
                "summary": "List contractors",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "tags": [
                    "contractors"
                ],
                "summary": "Register a contractor",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "422": {
                        "description": "Unprocessable Entity"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.CreateContractorRequest"
                        }
                    }
                ]
            }
        },
        "/contractors/{id}": {
            "get": {
                "tags": [
                    "contractors"
                ],
                "summary": "Get a contractor",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/bills/compute": {
            "post": {
                "tags": [
                    "bills"
                ],
                "summary": "Preview deductions",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "422": {
                        "description": "Unprocessable Entity"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.BillRequest"
                        }
                    }
                ]
            }
        },
        "/bills/validate": {
            "post": {
                "tags": [
                    "bills"
                ],
                "summary": "Validate a bill",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.BillRequest"
                        }
                    }
                ]
            }
        },
        "/bills": {
            "post": {
                "tags": [
                    "bills"
                ],
                "summary": "Submit a bill",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "409": {
                        "description": "Conflict"
                    },
                    "422": {
                        "description": "Unprocessable Entity"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.BillRequest"
                        }
                    }
                ]
            },
            "get": {
                "tags": [
                    "bills"
                ],
                "summary": "List bills",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "from",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "name": "to",
                        "in": "query",
                        "required": false
                    }
                ]
            }
        },
        "/bills/{id}": {
            "get": {
                "tags": [
                    "bills"
                ],
                "summary": "Get a bill",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/stats": {
            "get": {
                "tags": [
                    "stats"
                ],
                "summary": "Dashboard statistics",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "from",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "name": "to",
                        "in": "query",
                        "required": false
                    }
                ]
            }
        },
        "/stats/expenditure-trend": {
            "get": {
                "tags": [
                    "stats"
                ],
                "summary": "Daily expenditure trend",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "from",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "name": "to",
                        "in": "query",
                        "required": false
                    }
                ]
            }
        },
        "/reports/payment-register": {
            "get": {
                "tags": [
                    "reports"
                ],
                "summary": "Payment register",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "from",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "name": "to",
                        "in": "query",
                        "required": false
                    }
                ]
            }
        },
        "/reports/contractor-payments": {
            "get": {
                "tags": [
                    "reports"
                ],
                "summary": "Contractor-wise payments",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "from",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "name": "to",
                        "in": "query",
                        "required": false
                    }
                ]
            }
        },
        "/reports/scheme-expenditure": {
            "get": {
                "tags": [
                    "reports"
                ],
                "summary": "Scheme-wise expenditure",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/reports/deductions": {
            "get": {
                "tags": [
                    "reports"
                ],
                "summary": "Deduction register",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "from",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "name": "to",
                        "in": "query",
                        "required": false
                    }
                ]
            }
        },
        "/backups": {
            "post": {
                "tags": [
                    "backups"
                ],
                "summary": "Create a backup",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "502": {
                        "description": "Bad Gateway"
                    }
                }
            },
            "delete": {
                "tags": [
                    "backups"
                ],
                "summary": "Delete a backup",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "name": "key",
                        "in": "query",
                        "required": true
                    }
                ]
            }
        }
    },
    "definitions": {
        "handler.CreateContractorRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "parentage": {
                    "type": "string"
                },
                "resident": {
                    "type": "string"
                },
                "registration": {
                    "type": "string"
                },
                "class": {
                    "type": "string"
                },
                "pan": {
                    "type": "string"
                },
                "gstin": {
                    "type": "string"
                },
                "account_number": {
                    "type": "string"
                }
            },
            "required": [
                "name",
                "class",
                "pan",
                "gstin",
                "account_number"
            ]
        },
        "handler.CreateWorkRequest": {
            "type": "object",
            "properties": {
                "major_head": {
                    "type": "string"
                },
                "scheme": {
                    "type": "string"
                },
                "workcode": {
                    "type": "string"
                },
                "nomenclature": {
                    "type": "string"
                },
                "classification": {
                    "type": "string"
                },
                "aaa_number": {
                    "type": "string"
                },
                "aaa_date": {
                    "type": "string"
                },
                "aaa_amount": {
                    "type": "number"
                },
                "ts_number": {
                    "type": "string"
                },
                "ts_date": {
                    "type": "string"
                },
                "ts_amount": {
                    "type": "number"
                },
                "allot_number": {
                    "type": "string"
                },
                "allot_date": {
                    "type": "string"
                },
                "allot_amount": {
                    "type": "number"
                },
                "agreement_number": {
                    "type": "string"
                },
                "loi_number": {
                    "type": "string"
                },
                "loi_date": {
                    "type": "string"
                },
                "time_of_completion": {
                    "type": "string"
                },
                "start_date": {
                    "type": "string"
                },
                "completion_date": {
                    "type": "string"
                },
                "expenditure": {
                    "type": "number"
                }
            },
            "required": [
                "major_head",
                "scheme",
                "workcode",
                "nomenclature"
            ]
        },
        "handler.CreateBudgetRequest": {
            "type": "object",
            "properties": {
                "bill_type": {
                    "type": "string"
                },
                "major_head": {
                    "type": "string"
                },
                "scheme": {
                    "type": "string"
                },
                "amount": {
                    "type": "number"
                }
            },
            "required": [
                "bill_type",
                "major_head",
                "scheme"
            ]
        },
        "handler.BillRequest": {
            "type": "object",
            "properties": {
                "bill_type": {
                    "type": "string"
                },
                "contractor_id": {
                    "type": "string"
                },
                "major_head": {
                    "type": "string"
                },
                "scheme": {
                    "type": "string"
                },
                "workcode": {
                    "type": "string"
                },
                "nomenclature": {
                    "type": "string"
                },
                "billed_amount": {
                    "type": "number"
                },
                "deduct_payments": {
                    "type": "number"
                },
                "restricted_to_amount": {
                    "type": "string"
                },
                "income_tax_percent": {
                    "type": "number"
                },
                "deposit_percent": {
                    "type": "number"
                },
                "cess_percent": {
                    "type": "number"
                },
                "cgst_percent": {
                    "type": "number"
                },
                "sgst_percent": {
                    "type": "number"
                },
                "cc_bill": {
                    "type": "string"
                },
                "final_bill": {
                    "type": "boolean"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Works Bill API",
	Description:      "Contractor bills, statutory deductions and budget ceilings for public works.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
